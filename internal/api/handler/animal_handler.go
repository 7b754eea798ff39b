package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shelterworks/shelter-api/internal/core/domain"
	"github.com/shelterworks/shelter-api/internal/core/ports"
)

// AnimalHandler handles HTTP requests for animal records.
type AnimalHandler struct {
	service ports.AnimalService
}

func NewAnimalHandler(service ports.AnimalService) *AnimalHandler {
	return &AnimalHandler{service: service}
}

// List handles GET /animals. An optional ?q= parameter switches to a
// case-insensitive substring search over name, species, race and gender.
//
// @Summary      List or search animals
// @Tags         animals
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  false  "Substring to search for"
// @Success      200  {array}   animalResponse
// @Failure      401  {object}  errorResponse
// @Router       /animals [get]
func (h *AnimalHandler) List(c echo.Context) error {
	animals, err := h.service.List(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAnimalListResponse(animals))
}

// Get handles GET /animals/:id.
//
// @Summary      Get an animal by id
// @Tags         animals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Animal id"
// @Success      200  {object}  animalResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /animals/{id} [get]
func (h *AnimalHandler) Get(c echo.Context) error {
	id, err := animalID(c)
	if err != nil {
		return err
	}

	animal, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAnimalResponse(animal))
}

// Create handles POST /animals. The body is either a single animal object or
// a non-empty array of them; an array yields a contiguous block of ids.
//
// @Summary      Create one or many animals
// @Tags         animals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAnimalRequest  true  "Animal, or array of animals"
// @Success      201   {object}  animalResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /animals [post]
func (h *AnimalHandler) Create(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if isJSONArray(body) {
		return h.createMany(c, body)
	}

	var req createAnimalRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	animal, err := h.service.Create(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toAnimalResponse(animal))
}

func (h *AnimalHandler) createMany(c echo.Context, body []byte) error {
	var reqs []createAnimalRequest
	if err := json.Unmarshal(body, &reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return domain.ErrEmptyBatch
	}

	inputs := make([]ports.CreateAnimalInput, 0, len(reqs))
	for i, req := range reqs {
		if err := c.Validate(&req); err != nil {
			return prefixViolations(err, i)
		}
		inputs = append(inputs, toCreateInput(req))
	}

	created, err := h.service.CreateMany(c.Request().Context(), inputs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toAnimalListResponse(created))
}

// Update handles PUT /animals/:id with a partial body. Id and createdAt
// never change; updatedAt is stamped by the store.
//
// @Summary      Update an animal
// @Tags         animals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Animal id"
// @Param        body  body      updateAnimalRequest  true  "Fields to change"
// @Success      200   {object}  animalResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /animals/{id} [put]
func (h *AnimalHandler) Update(c echo.Context) error {
	id, err := animalID(c)
	if err != nil {
		return err
	}

	var req updateAnimalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	animal, err := h.service.Update(c.Request().Context(), id, toUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAnimalResponse(animal))
}

// Delete handles DELETE /animals/:id. Deleted ids are never reassigned.
//
// @Summary      Delete an animal
// @Tags         animals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Animal id"
// @Success      200  {object}  deleteAnimalResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /animals/{id} [delete]
func (h *AnimalHandler) Delete(c echo.Context) error {
	id, err := animalID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteAnimalResponse{
		Success: true,
		Message: "Animal deleted successfully",
	})
}

// animalID parses the :id path parameter, rejecting non-numeric values.
func animalID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

// isJSONArray reports whether the body's first significant byte opens an array.
func isJSONArray(body []byte) bool {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}

// prefixViolations rewrites validation field paths with the batch index, so
// "name is required" on the third element reports as field "[2].name".
func prefixViolations(err error, index int) error {
	ve, ok := err.(*domain.ValidationError)
	if !ok {
		return err
	}
	prefixed := make([]domain.FieldViolation, len(ve.Violations))
	for i, v := range ve.Violations {
		v.Field = fmt.Sprintf("[%d].%s", index, v.Field)
		prefixed[i] = v
	}
	return domain.NewValidationError(prefixed...)
}
