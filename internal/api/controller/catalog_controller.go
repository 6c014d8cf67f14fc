package controller

import (
	"errors"
	"net/http"
	"strconv"

	"ycliu87/Car-Garage/internal/api/models"
	"ycliu87/Car-Garage/internal/api/response"
	"ycliu87/Car-Garage/internal/api/service"

	"github.com/gin-gonic/gin"
)

// CatalogController handles the car catalog HTTP endpoints.
type CatalogController struct {
	catalogService service.CatalogService
}

// NewCatalogController creates a new CatalogController.
func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// Home renders the home page.
// GET /
func (cc *CatalogController) Home(c *gin.Context) {
	response.Page(c, http.StatusOK, "index.html", gin.H{"Title": "Home Page"})
}

// NotFoundPage renders the dedicated not-found page.
// GET /404
func (cc *CatalogController) NotFoundPage(c *gin.Context) {
	response.Page(c, http.StatusOK, "404.html", gin.H{"Title": "Not Found"})
}

// List renders up to ?limit=N cars in insertion order.
// GET /cars
func (cc *CatalogController) List(c *gin.Context) {
	cars, err := cc.catalogService.List(c.Request.Context(), c.Query("limit"))
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			response.InvalidForm(c, http.StatusBadRequest, "see-all-cars.html", gin.H{"Title": "See All Cars"})
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Page(c, http.StatusOK, "see-all-cars.html", gin.H{
		"Title": "See All Cars",
		"Cars":  cars,
	})
}

// CreateForm renders the creation form.
// GET /create-car
func (cc *CatalogController) CreateForm(c *gin.Context) {
	response.Page(c, http.StatusOK, "create-car.html", gin.H{"Title": "Add a Car"})
}

// Create validates the form and inserts a new car.
// POST /cars
func (cc *CatalogController) Create(c *gin.Context) {
	var form models.CarForm
	if err := c.ShouldBind(&form); err != nil {
		response.InvalidForm(c, http.StatusBadRequest, "create-car.html", gin.H{"Title": "Add a Car"})
		return
	}

	if _, err := cc.catalogService.Create(c.Request.Context(), &form); err != nil {
		if errors.Is(err, models.ErrConflict) {
			response.InvalidForm(c, http.StatusBadRequest, "create-car.html", gin.H{"Title": "Add a Car"})
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Created(c, "/cars")
}

// Detail renders a single car, or sends the caller to /404. The read paths
// redirect instead of erroring; only the mutation endpoints answer 400.
// GET /car/:id
func (cc *CatalogController) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Found(c, "/404")
		return
	}

	car, err := cc.catalogService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			response.Found(c, "/404")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Page(c, http.StatusOK, "car-detail.html", gin.H{
		"Title": car.Brand + " " + car.Model,
		"Car":   car,
	})
}

// UpdateForm renders the edit form pre-filled with the current record.
// GET /update-car/:id
func (cc *CatalogController) UpdateForm(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	car, err := cc.catalogService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.Status(http.StatusBadRequest)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Page(c, http.StatusOK, "update-car.html", gin.H{
		"Title": "Update Car",
		"Car":   car,
	})
}

// Update fully replaces the record's fields.
// POST /update-car/:id
func (cc *CatalogController) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var form models.CarForm
	if err := c.ShouldBind(&form); err != nil {
		response.InvalidForm(c, http.StatusBadRequest, "update-car.html", gin.H{"Title": "Update Car"})
		return
	}

	if err := cc.catalogService.Update(c.Request.Context(), id, &form); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, models.ErrConflict):
			response.InvalidForm(c, http.StatusBadRequest, "update-car.html", gin.H{"Title": "Update Car"})
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.SeeOther(c, "/cars")
}

// Delete removes the record.
// GET /delete-car/:id
func (cc *CatalogController) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := cc.catalogService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.Status(http.StatusBadRequest)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Found(c, "/cars")
}

// Search redirects to the detail page of the submitted id, or to /404.
// POST /search
func (cc *CatalogController) Search(c *gin.Context) {
	var form models.SearchForm
	if err := c.ShouldBind(&form); err != nil {
		response.SeeOther(c, "/404")
		return
	}

	if _, err := cc.catalogService.Get(c.Request.Context(), form.ID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			response.SeeOther(c, "/404")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.SeeOther(c, "/car/"+strconv.FormatInt(form.ID, 10))
}
