package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"petty-shelter.backend/internal/domain/entities"
	domainerrors "petty-shelter.backend/internal/domain/errors"
	"petty-shelter.backend/internal/interfaces/http/middleware"
	"petty-shelter.backend/internal/interfaces/http/response"
	"petty-shelter.backend/internal/usecases"
	"petty-shelter.backend/pkg/utils"
)

const defaultPageSize = 10

// PetHandler handles the pet catalogue, adoption applications and
// emergency care endpoints
type PetHandler struct {
	petUsecase       *usecases.PetUsecase
	adoptionUsecase  *usecases.AdoptionUsecase
	emergencyUsecase *usecases.EmergencyUsecase
}

// NewPetHandler creates a new pet handler
func NewPetHandler(
	petUsecase *usecases.PetUsecase,
	adoptionUsecase *usecases.AdoptionUsecase,
	emergencyUsecase *usecases.EmergencyUsecase,
) *PetHandler {
	return &PetHandler{
		petUsecase:       petUsecase,
		adoptionUsecase:  adoptionUsecase,
		emergencyUsecase: emergencyUsecase,
	}
}

func paginationFromQuery(c *gin.Context) utils.PaginationParams {
	var q struct {
		Page  int `form:"page"`
		Limit int `form:"limit"`
	}
	_ = c.ShouldBindQuery(&q)
	return utils.GetPaginationParams(q.Page, q.Limit, defaultPageSize)
}

// List handles GET /pets
func (h *PetHandler) List(c *gin.Context) {
	page, err := h.petUsecase.List(c.Request.Context(), paginationFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

// Search handles GET /pets/search
func (h *PetHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		query = c.Query("q")
	}

	page, err := h.petUsecase.Search(c.Request.Context(), query, paginationFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

// Get handles GET /pets/:id
func (h *PetHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid pet id"))
		return
	}

	pet, err := h.petUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, pet)
}

// Create handles POST /pets
func (h *PetHandler) Create(c *gin.Context) {
	var input entities.CreatePetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pet, err := h.petUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, pet)
}

// Update handles PATCH /pets/:id
func (h *PetHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid pet id"))
		return
	}

	var input entities.UpdatePetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pet, err := h.petUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, pet)
}

// Delete handles DELETE /pets/:id
func (h *PetHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid pet id"))
		return
	}

	if err := h.petUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "pet deleted"})
}

// CreateAdoptionApplication handles POST /pets/adoption-application
func (h *PetHandler) CreateAdoptionApplication(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.CreateAdoptionApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	app, err := h.adoptionUsecase.Create(c.Request.Context(), caller, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, app)
}

// ListAdoptionApplications handles GET /pets/adoption-applications
func (h *PetHandler) ListAdoptionApplications(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	page, err := h.adoptionUsecase.List(c.Request.Context(), caller, paginationFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

// ReviewAdoptionApplication handles PATCH /pets/adoption-applications/:id
func (h *PetHandler) ReviewAdoptionApplication(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid application id"))
		return
	}

	var input entities.UpdateAdoptionApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	app, err := h.adoptionUsecase.Review(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, app)
}

// CreateEmergencyCare handles POST /pets/emergency-care
func (h *PetHandler) CreateEmergencyCare(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.CreateEmergencyCareInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	req, err := h.emergencyUsecase.Create(c.Request.Context(), caller, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, req)
}

// ListEmergencyCare handles GET /pets/emergency-care
func (h *PetHandler) ListEmergencyCare(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	all := c.Query("all") == "true"
	reqs, err := h.emergencyUsecase.List(c.Request.Context(), caller, all)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, reqs)
}

// UpdateEmergencyCare handles PATCH /pets/emergency-care/:id
func (h *PetHandler) UpdateEmergencyCare(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid request id"))
		return
	}

	var input entities.UpdateEmergencyCareInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	req, err := h.emergencyUsecase.Update(c.Request.Context(), caller, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, req)
}
