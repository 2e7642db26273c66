// Package api exposes the schedulers over HTTP.
package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/TigerCipher/cpusched/internal/workload"
	"github.com/TigerCipher/cpusched/scheduler"
)

type SchedulerHandler struct {
	logger *slog.Logger
}

func NewSchedulerHandler(logger *slog.Logger) *SchedulerHandler {
	return &SchedulerHandler{logger: logger}
}

// New builds the fiber app with every route registered.
func New(logger *slog.Logger) *fiber.App {
	h := NewSchedulerHandler(logger)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"ok": true})
	})

	v1 := app.Group("/api/v1")
	{
		v1.Post("/all", h.AllAlgorithms)
		v1.Post("/:algorithm", h.Algorithm)
	}
	return app
}

// Algorithm runs the algorithm named in the path.
func (h *SchedulerHandler) Algorithm(ctx *fiber.Ctx) error {
	alg, err := scheduler.ParseAlgorithm(ctx.Params("algorithm"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	procs, quantum, err := h.parse(ctx)
	if err != nil {
		return h.fail(ctx, err)
	}

	result, err := scheduler.Run(alg, procs, quantum)
	if err != nil {
		return h.fail(ctx, err)
	}
	h.logger.Info("scheduled", "algorithm", alg, "processes", len(procs), "average_waiting", result.AverageWaiting)
	return ctx.JSON(result)
}

// AllAlgorithms runs every algorithm over the same workload.
func (h *SchedulerHandler) AllAlgorithms(ctx *fiber.Ctx) error {
	procs, quantum, err := h.parse(ctx)
	if err != nil {
		return h.fail(ctx, err)
	}

	results, err := scheduler.RunAll(ctx.UserContext(), scheduler.Algorithms, procs, quantum)
	if err != nil {
		return h.fail(ctx, err)
	}
	h.logger.Info("scheduled all", "processes", len(procs), "quantum", quantum)
	return ctx.JSON(fiber.Map{"results": results})
}

func (h *SchedulerHandler) parse(ctx *fiber.Ctx) ([]scheduler.Process, int64, error) {
	var request workload.Config
	if err := ctx.BodyParser(&request); err != nil {
		return nil, 0, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	procs, err := request.Records()
	if err != nil {
		return nil, 0, err
	}
	return procs, request.EffectiveQuantum(), nil
}

func (h *SchedulerHandler) fail(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		status = fe.Code
	case errors.Is(err, scheduler.ErrEmptyInput),
		errors.Is(err, scheduler.ErrInvalidProcess),
		errors.Is(err, scheduler.ErrInvalidQuantum),
		errors.Is(err, workload.ErrInvalidWorkload):
		status = fiber.StatusBadRequest
	}
	h.logger.Warn("request rejected", "path", ctx.Path(), "status", status, "err", err)
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
