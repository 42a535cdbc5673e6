package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/DevAyush27/med-tracker/internal/middleware"
	"github.com/DevAyush27/med-tracker/internal/model"
	"github.com/DevAyush27/med-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MedicineHandler handles medicine tracking requests
type MedicineHandler struct {
	service service.MedicineService
}

// NewMedicineHandler creates a new MedicineHandler
func NewMedicineHandler(s service.MedicineService) *MedicineHandler {
	return &MedicineHandler{service: s}
}

// Helper to get authenticated user ID from context
func getAuthUserID(c *gin.Context) (int, error) {
	userIDVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := userIDVal.(int)
	if !ok {
		return 0, errors.New("invalid user ID type in context")
	}
	return userID, nil
}

// Helper to parse the medicine ID path parameter
func getMedicineID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid medicine ID"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *MedicineHandler) AddMedicine(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CreateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	medicine, err := h.service.AddMedicine(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSchedule) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error adding medicine: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add medicine"})
		return
	}
	c.JSON(http.StatusCreated, medicine)
}

func (h *MedicineHandler) GetMyMedicines(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	medicines, err := h.service.GetUserMedicines(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error getting medicines: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve medicines"})
		return
	}
	if medicines == nil {
		medicines = []model.Medicine{}
	}
	c.JSON(http.StatusOK, medicines)
}

func (h *MedicineHandler) GetMedicineByID(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	id, ok := getMedicineID(c)
	if !ok {
		return
	}

	medicine, err := h.service.GetMedicine(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrMedicineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Medicine not found"})
			return
		}
		log.Printf("Error getting medicine: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve medicine"})
		return
	}
	c.JSON(http.StatusOK, medicine)
}

func (h *MedicineHandler) UpdateMedicine(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	id, ok := getMedicineID(c)
	if !ok {
		return
	}

	var req model.UpdateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	medicine, err := h.service.UpdateMedicine(c.Request.Context(), userID, id, req)
	if err != nil {
		if errors.Is(err, service.ErrMedicineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Medicine not found"})
			return
		}
		log.Printf("Error updating medicine: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update medicine"})
		return
	}
	c.JSON(http.StatusOK, medicine)
}

func (h *MedicineHandler) DeleteMedicine(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	id, ok := getMedicineID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteMedicine(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrMedicineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Medicine not found"})
			return
		}
		log.Printf("Error deleting medicine: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete medicine"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Medicine removed"})
}

func (h *MedicineHandler) MarkDose(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	id, ok := getMedicineID(c)
	if !ok {
		return
	}

	var req model.MarkDoseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	medicine, err := h.service.MarkDose(c.Request.Context(), userID, id, req)
	if err != nil {
		if errors.Is(err, service.ErrMedicineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Medicine not found"})
			return
		}
		log.Printf("Error marking dose: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record dose"})
		return
	}
	c.JSON(http.StatusOK, medicine)
}

func (h *MedicineHandler) GetStats(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	stats, err := h.service.GetStats(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error computing stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *MedicineHandler) GetAnalytics(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	report, err := h.service.GetAnalytics(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error computing analytics: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *MedicineHandler) GetAllMedicines(c *gin.Context) {
	medicines, err := h.service.GetAllMedicines(c.Request.Context())
	if err != nil {
		log.Printf("Error listing all medicines: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve medicines"})
		return
	}
	if medicines == nil {
		medicines = []model.Medicine{}
	}
	c.JSON(http.StatusOK, medicines)
}

// RegisterMedicineRoutes registers medicine routes
func (h *MedicineHandler) RegisterMedicineRoutes(rg *gin.RouterGroup, authMW, caregiverMW gin.HandlerFunc) {
	medGroup := rg.Group("/medicines")
	medGroup.Use(authMW)
	{
		medGroup.POST("", h.AddMedicine)
		medGroup.GET("", h.GetMyMedicines)
		medGroup.GET("/stats", h.GetStats)
		medGroup.GET("/analytics", h.GetAnalytics)
		medGroup.GET("/all", caregiverMW, h.GetAllMedicines)
		medGroup.GET("/:id", h.GetMedicineByID)
		medGroup.PUT("/:id", h.UpdateMedicine)
		medGroup.DELETE("/:id", h.DeleteMedicine)
		medGroup.POST("/:id/doses", h.MarkDose)
	}
}
