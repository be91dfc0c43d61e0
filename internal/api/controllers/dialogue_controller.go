package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"findflow/internal/models/request_models"
	"findflow/internal/services"
	"findflow/pkg/utils"
)

type DialogueController struct {
	dialogueService services.DialogueServiceInterface
}

func NewDialogueController(dialogueService services.DialogueServiceInterface) *DialogueController {
	return &DialogueController{
		dialogueService: dialogueService,
	}
}

func (dc *DialogueController) AskHandler(c *gin.Context) {
	var req request_models.DialogueTurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Step < 0 {
		utils.RespondError(c, http.StatusBadRequest, "Step must not be negative")
		return
	}

	response, err := dc.dialogueService.HandleTurn(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response, "Dialogue turn processed")
}
