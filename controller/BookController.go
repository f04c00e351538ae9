package controller

import (
	"errors"

	"bookstore-api/dto"
	"bookstore-api/repository"
	"bookstore-api/util"

	"github.com/gofiber/fiber/v2"
)

// BookController provides handlers for the books in the book store's
// database.
type BookController struct {
	repo       repository.BookRepository
	authorRepo repository.AuthorRepository
	logger     *util.Logger
}

func NewBookController(repo repository.BookRepository, authorRepo repository.AuthorRepository, logger *util.Logger) *BookController {
	return &BookController{repo: repo, authorRepo: authorRepo, logger: logger}
}

// GetBooks godoc
// @Summary      List all books
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.BookDTO
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /books [get]
func (bc *BookController) GetBooks(c *fiber.Ctx) error {
	bc.logger.Info("books.list: attempted get all books")
	books, err := bc.repo.FindAll()
	if err != nil {
		return bc.internalError(c, "books.list", err)
	}
	bc.logger.Info("books.list: got all books")
	return c.Status(fiber.StatusOK).JSON(dto.BooksToDTO(books))
}

// GetBook godoc
// @Summary      Get book by id
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  dto.BookDTO
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /books/{id} [get]
func (bc *BookController) GetBook(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid book id"})
	}

	book, err := bc.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			bc.logger.Warn("books.get: book with id %d was not found", id)
			return c.SendStatus(fiber.StatusNotFound)
		}
		return bc.internalError(c, "books.get", err)
	}

	bc.logger.Info("books.get: got book with id %d", id)
	return c.Status(fiber.StatusOK).JSON(dto.BookToDTO(book))
}

// Create godoc
// @Summary      Create a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload body dto.BookCreateDTO true "Book payload"
// @Success      201  {object}  dto.BookDTO
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /books [post]
func (bc *BookController) Create(c *fiber.Ctx) error {
	bc.logger.Info("books.create: book submission attempted")

	var req dto.BookCreateDTO
	if err := c.BodyParser(&req); err != nil {
		bc.logger.Warn("books.create: empty or malformed request was submitted")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}
	if err := util.ValidateStruct(&req); err != nil {
		bc.logger.Warn("books.create: book data was incomplete")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Reject books pointing at a nonexistent author up front; the FK error
	// from the database would otherwise surface as an opaque 500.
	exists, err := bc.authorRepo.IsExists(req.AuthorID)
	if err != nil {
		return bc.internalError(c, "books.create", err)
	}
	if !exists {
		bc.logger.Warn("books.create: author with id %d not found", req.AuthorID)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown author id"})
	}

	book := req.ToModel()
	if err := bc.repo.Create(book); err != nil {
		return bc.internalError(c, "books.create", err)
	}

	bc.logger.Info("books.create: book created")
	return c.Status(fiber.StatusCreated).JSON(dto.BookToDTO(book))
}

// Update godoc
// @Summary      Update a book
// @Tags         books
// @Accept       json
// @Security     BearerAuth
// @Param        id      path int                true "Book ID"
// @Param        payload body dto.BookUpdateDTO true "Book payload"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /books/{id} [put]
func (bc *BookController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		bc.logger.Warn("books.update: update failed with bad data")
		return c.SendStatus(fiber.StatusBadRequest)
	}
	bc.logger.Info("books.update: book update attempted - id:%d", id)

	var req dto.BookUpdateDTO
	if err := c.BodyParser(&req); err != nil || uint(id) != req.ID {
		bc.logger.Warn("books.update: update failed with bad data")
		return c.SendStatus(fiber.StatusBadRequest)
	}
	if err := util.ValidateStruct(&req); err != nil {
		bc.logger.Warn("books.update: update failed with incomplete data")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	exists, err := bc.repo.IsExists(uint(id))
	if err != nil {
		return bc.internalError(c, "books.update", err)
	}
	if !exists {
		bc.logger.Warn("books.update: book with id %d not found", id)
		return c.SendStatus(fiber.StatusNotFound)
	}

	if err := bc.repo.Update(req.ToModel()); err != nil {
		return bc.internalError(c, "books.update", err)
	}

	bc.logger.Info("books.update: book updated")
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Delete a book
// @Tags         books
// @Security     BearerAuth
// @Param        id   path  int  true  "Book ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /books/{id} [delete]
func (bc *BookController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		bc.logger.Warn("books.delete: delete failed with bad data")
		return c.SendStatus(fiber.StatusBadRequest)
	}

	book, err := bc.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			bc.logger.Warn("books.delete: book with id %d not found", id)
			return c.SendStatus(fiber.StatusNotFound)
		}
		return bc.internalError(c, "books.delete", err)
	}

	if err := bc.repo.Delete(book); err != nil {
		return bc.internalError(c, "books.delete", err)
	}

	bc.logger.Info("books.delete: book with id %d deleted", id)
	return c.SendStatus(fiber.StatusNoContent)
}

func (bc *BookController) internalError(c *fiber.Ctx, location string, err error) error {
	bc.logger.Error("%s: %v", location, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "something went wrong, please contact the administrator",
	})
}
