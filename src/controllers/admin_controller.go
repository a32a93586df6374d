package controllers

import (
	"Backend-Curadoria-AF/src/models"
	"Backend-Curadoria-AF/src/services/admins"
	"Backend-Curadoria-AF/src/services/products"
	"Backend-Curadoria-AF/src/utils"

	"github.com/gofiber/fiber/v2"
)

type adminLoginRequest struct {
	Password string `json:"password"`
}

// AdminLogin godoc
// @Summary      Exchange the admin password for a bearer token
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body body controllers.adminLoginRequest true "Credentials"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  models.ErrorResponse
// @Router       /admin/login [post]
func AdminLogin(c *fiber.Ctx) error {
	var req adminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	token, err := admins.Login(req.Password)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	return c.JSON(fiber.Map{"token": token})
}

// AdminListProducts godoc
// @Summary      List products for the admin screen
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page"
// @Param        limit query int false "Limit"
// @Param        search query string false "Search by name or SKU"
// @Param        sortBy query string false "Sort field"
// @Param        order query string false "asc or desc"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /admin/products [get]
func AdminListProducts(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 10
	}

	page, err := products.GetAllProducts(params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching products")
	}
	return c.JSON(page)
}

// AdminGetProduct godoc
// @Summary      Get one product
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Product ID"
// @Success      200  {object}  models.Product
// @Failure      404  {object}  models.ErrorResponse
// @Router       /admin/products/{id} [get]
func AdminGetProduct(c *fiber.Ctx) error {
	product, err := products.GetProductByID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Product not found")
	}
	return c.JSON(product)
}

// AdminCreateProduct godoc
// @Summary      Create a product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.ProductRequest true "Product"
// @Success      201  {object}  models.Product
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /admin/products [post]
func AdminCreateProduct(c *fiber.Ctx) error {
	var req models.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	product, err := products.CreateProduct(&req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error creating product")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// AdminUpdateProduct godoc
// @Summary      Update a product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Product ID"
// @Param        body body models.ProductRequest true "Product"
// @Success      200  {object}  models.Product
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /admin/products/{id} [put]
func AdminUpdateProduct(c *fiber.Ctx) error {
	var req models.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Validation failed: "+err.Error())
	}

	product, err := products.UpdateProduct(c.Params("id"), &req)
	if err == products.ErrProductNotFound {
		return utils.HandleError(c, fiber.StatusNotFound, "Product not found")
	}
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error updating product")
	}
	return c.JSON(product)
}

// AdminDeleteProduct godoc
// @Summary      Delete a product
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Product ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  models.ErrorResponse
// @Router       /admin/products/{id} [delete]
func AdminDeleteProduct(c *fiber.Ctx) error {
	err := products.DeleteProduct(c.Params("id"))
	if err == products.ErrProductNotFound {
		return utils.HandleError(c, fiber.StatusNotFound, "Product not found")
	}
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error deleting product")
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
