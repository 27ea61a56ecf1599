package task

import (
	"net/http"
	"strconv"
	"todoapi/infras/otel"
	"todoapi/internal/domains/task/model/dto"
	"todoapi/internal/domains/task/service"
	"todoapi/shared"
	"todoapi/shared/constant"
	"todoapi/shared/validator"
	"todoapi/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const resourcePath = "/TaskItem"

type Handler struct {
	service service.Task
	otel    otel.Otel
}

func New(service service.Task, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route(resourcePath, func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTaskItems)
		routerGroup.Post("/", handler.CreateTaskItem)
		routerGroup.Get("/user/{"+constant.RequestParamOwnerID+"}", handler.GetTaskItemsByOwner)
		routerGroup.Get("/{"+constant.RequestParamID+"}", handler.GetTaskItem)
		routerGroup.Put("/{"+constant.RequestParamID+"}", handler.UpdateTaskItem)
		routerGroup.Delete("/{"+constant.RequestParamID+"}", handler.DeleteTaskItem)
		routerGroup.Put("/{"+constant.RequestParamID+"}/toggle-status", handler.ToggleTaskItemStatus)
	})
}

// Location returns the path a created task item can be fetched from.
func Location(id int64) string {
	return "/api" + resourcePath + "/" + strconv.FormatInt(id, 10)
}

// GetTaskItems lists every task item.
// @Summary List task items
// @Description Return every task item ordered by id. Never paginated.
// @Tags TaskItem
// @Produce json
// @Success 200 {array} dto.TaskItemResponse
// @Failure 500 {object} response.Error
// @Router /api/TaskItem [get]
func (handler *Handler) GetTaskItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTaskItems")
	defer scope.End()

	tasks, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get task items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, tasks)
}

// GetTaskItem returns one task item.
// @Summary Get a task item
// @Tags TaskItem
// @Produce json
// @Param id path int true "Task item ID"
// @Success 200 {object} dto.TaskItemResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/TaskItem/{id} [get]
func (handler *Handler) GetTaskItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTaskItem")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	task, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get task item")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, task)
}

// GetTaskItemsByOwner lists the task items of one user.
// @Summary List task items by owner
// @Description Unknown owners and owners without tasks both yield 404.
// @Tags TaskItem
// @Produce json
// @Param ownerId path int true "Owner user ID"
// @Success 200 {array} dto.TaskItemResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/TaskItem/user/{ownerId} [get]
func (handler *Handler) GetTaskItemsByOwner(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTaskItemsByOwner")
	defer scope.End()

	ownerID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamOwnerID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	tasks, err := handler.service.GetByOwner(ctx, ownerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("ownerId", ownerID).Msg("failed to get task items by owner")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, tasks)
}

// CreateTaskItem stores a new task item.
// @Summary Create a task item
// @Description Any id in the body is ignored; the store assigns one.
// @Tags TaskItem
// @Accept json
// @Produce json
// @Param request body dto.TaskItemRequest true "Task item"
// @Success 201 {object} dto.TaskItemResponse
// @Header 201 {string} Location "/api/TaskItem/{id}"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/TaskItem [post]
func (handler *Handler) CreateTaskItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTaskItem")
	defer scope.End()

	req := dto.TaskItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	task, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create task item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Task item created")

	response.WithCreated(w, Location(task.ID), task)
}

// UpdateTaskItem replaces a task item.
// @Summary Replace a task item
// @Description Title, description, due date, status and owner are all overwritten. The id is kept.
// @Tags TaskItem
// @Accept json
// @Produce json
// @Param id path int true "Task item ID"
// @Param request body dto.TaskItemRequest true "Task item"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/TaskItem/{id} [put]
func (handler *Handler) UpdateTaskItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTaskItem")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.TaskItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update task item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Task item updated successfully")
}

// DeleteTaskItem removes a task item.
// @Summary Delete a task item
// @Tags TaskItem
// @Produce json
// @Param id path int true "Task item ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/TaskItem/{id} [delete]
func (handler *Handler) DeleteTaskItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTaskItem")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete task item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Task item deleted successfully")
}

// ToggleTaskItemStatus flips the completion flag.
// @Summary Toggle task item status
// @Tags TaskItem
// @Produce json
// @Param id path int true "Task item ID"
// @Success 200 {object} dto.TaskItemResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/TaskItem/{id}/toggle-status [put]
func (handler *Handler) ToggleTaskItemStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleTaskItemStatus")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	task, err := handler.service.ToggleStatus(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to toggle task item status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, task)
}
