package http

import (
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/chemasport/catalogo-api/internal/application/dto"
	"github.com/chemasport/catalogo-api/internal/application/usecase"
	"github.com/chemasport/catalogo-api/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        page   query  int     false  "Página"              default(1)
// @Param        limit  query  int     false  "Tamaño de página"    default(20)
// @Param        q      query  string  false  "Substring sobre name"
// @Param        type   query  string  false  "Tipo exacto"
// @Success      200    {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page, limit := dto.ClampPage(c.QueryInt("page", 1), c.QueryInt("limit", 20))
	out, err := h.uc.List(page, limit, c.Query("q"), c.Query("type"))
	if err != nil {
		h.log.Error().Err(err).Msg("listar productos")
		return writeError(c, err)
	}
	// El catálogo es la ruta caliente del front: cache corto compartido.
	c.Set(fiber.HeaderCacheControl, "public, max-age=20")
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto (multipart, al menos una imagen)
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se espera multipart/form-data"})
	}

	price, _ := strconv.ParseFloat(formValue(form, "price"), 64)
	in := dto.CreateProductForm{
		Name:   formValue(form, "name"),
		Price:  price,
		Type:   formValue(form, "type"),
		Stock:  dto.ParseInventoryForm(formValue(form, "stock")),
		Bodega: dto.ParseInventoryForm(formValue(form, "bodega")),
		User:   formValue(form, "user"),
	}

	// El front histórico manda los archivos bajo "images" o "image".
	headers := append(form.File["images"], form.File["image"]...)
	files, err := readFiles(headers)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer un archivo del formulario"})
	}

	out, err := h.uc.Create(c.Context(), in, files, Actor(c, in.User))
	if err != nil {
		h.log.Error().Err(err).Msg("crear producto")
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (solo los campos presentes sobreescriben)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in, Actor(c, in.User))
	if err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("actualizar producto")
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto (borra también sus imágenes remotas)
// @Tags         products
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.Context(), id, Actor(c, "")); err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("eliminar producto")
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Health godoc
// @Summary      Conteo rápido de productos
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /api/products/health [get]
func (h *ProductHandler) Health(c *fiber.Ctx) error {
	out, err := h.uc.Health()
	if err != nil {
		h.log.Error().Err(err).Msg("health productos")
		return writeError(c, err)
	}
	return c.JSON(out)
}

func formValue(form *multipart.Form, key string) string {
	if vals := form.Value[key]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

func readFiles(headers []*multipart.FileHeader) ([][]byte, error) {
	files := make([][]byte, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, data)
	}
	return files, nil
}
