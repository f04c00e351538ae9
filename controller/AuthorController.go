package controller

import (
	"errors"

	"bookstore-api/dto"
	"bookstore-api/repository"
	"bookstore-api/util"

	"github.com/gofiber/fiber/v2"
)

// AuthorController provides handlers for the authors in the book store's
// database.
type AuthorController struct {
	repo   repository.AuthorRepository
	logger *util.Logger
}

func NewAuthorController(repo repository.AuthorRepository, logger *util.Logger) *AuthorController {
	return &AuthorController{repo: repo, logger: logger}
}

// GetAuthors godoc
// @Summary      List all authors
// @Tags         authors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.AuthorDTO
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /authors [get]
func (ac *AuthorController) GetAuthors(c *fiber.Ctx) error {
	ac.logger.Info("authors.list: attempted get all authors")
	authors, err := ac.repo.FindAll()
	if err != nil {
		return ac.internalError(c, "authors.list", err)
	}
	ac.logger.Info("authors.list: got all authors")
	return c.Status(fiber.StatusOK).JSON(dto.AuthorsToDTO(authors))
}

// GetAuthor godoc
// @Summary      Get author by id
// @Tags         authors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Author ID"
// @Success      200  {object}  dto.AuthorDTO
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /authors/{id} [get]
func (ac *AuthorController) GetAuthor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid author id"})
	}

	author, err := ac.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			ac.logger.Warn("authors.get: author with id %d was not found", id)
			return c.SendStatus(fiber.StatusNotFound)
		}
		return ac.internalError(c, "authors.get", err)
	}

	ac.logger.Info("authors.get: got author with id %d", id)
	return c.Status(fiber.StatusOK).JSON(dto.AuthorToDTO(author))
}

// Create godoc
// @Summary      Create an author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload body dto.AuthorCreateDTO true "Author payload"
// @Success      201  {object}  dto.AuthorDTO
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /authors [post]
func (ac *AuthorController) Create(c *fiber.Ctx) error {
	ac.logger.Info("authors.create: author submission attempted")

	var req dto.AuthorCreateDTO
	if err := c.BodyParser(&req); err != nil {
		ac.logger.Warn("authors.create: empty or malformed request was submitted")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}
	if err := util.ValidateStruct(&req); err != nil {
		ac.logger.Warn("authors.create: author data was incomplete")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	author := req.ToModel()
	if err := ac.repo.Create(author); err != nil {
		return ac.internalError(c, "authors.create", err)
	}

	ac.logger.Info("authors.create: author created")
	return c.Status(fiber.StatusCreated).JSON(dto.AuthorToDTO(author))
}

// Update godoc
// @Summary      Update an author
// @Tags         authors
// @Accept       json
// @Security     BearerAuth
// @Param        id      path int                  true "Author ID"
// @Param        payload body dto.AuthorUpdateDTO true "Author payload"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /authors/{id} [put]
func (ac *AuthorController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		ac.logger.Warn("authors.update: update failed with bad data")
		return c.SendStatus(fiber.StatusBadRequest)
	}
	ac.logger.Info("authors.update: author update attempted - id:%d", id)

	var req dto.AuthorUpdateDTO
	if err := c.BodyParser(&req); err != nil || uint(id) != req.ID {
		ac.logger.Warn("authors.update: update failed with bad data")
		return c.SendStatus(fiber.StatusBadRequest)
	}
	if err := util.ValidateStruct(&req); err != nil {
		ac.logger.Warn("authors.update: update failed with incomplete data")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	exists, err := ac.repo.IsExists(uint(id))
	if err != nil {
		return ac.internalError(c, "authors.update", err)
	}
	if !exists {
		ac.logger.Warn("authors.update: author with id %d not found", id)
		return c.SendStatus(fiber.StatusNotFound)
	}

	if err := ac.repo.Update(req.ToModel()); err != nil {
		return ac.internalError(c, "authors.update", err)
	}

	ac.logger.Info("authors.update: author updated")
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Delete an author
// @Tags         authors
// @Security     BearerAuth
// @Param        id   path  int  true  "Author ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /authors/{id} [delete]
func (ac *AuthorController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		ac.logger.Warn("authors.delete: delete failed with bad data")
		return c.SendStatus(fiber.StatusBadRequest)
	}

	author, err := ac.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			ac.logger.Warn("authors.delete: author with id %d not found", id)
			return c.SendStatus(fiber.StatusNotFound)
		}
		return ac.internalError(c, "authors.delete", err)
	}

	if err := ac.repo.Delete(author); err != nil {
		return ac.internalError(c, "authors.delete", err)
	}

	ac.logger.Info("authors.delete: author with id %d deleted", id)
	return c.SendStatus(fiber.StatusNoContent)
}

func (ac *AuthorController) internalError(c *fiber.Ctx, location string, err error) error {
	ac.logger.Error("%s: %v", location, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "something went wrong, please contact the administrator",
	})
}
