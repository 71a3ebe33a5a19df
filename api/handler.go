package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cpusched/config"
	"cpusched/internal/core"
	"cpusched/internal/logging"
	"cpusched/internal/requests"
	"cpusched/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logger}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmFCFS)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmRR)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmSJF)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmPriority)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}
	comparison, err := schedulers.Compare(request.Workload(), s.timeQuantum(request))
	if err != nil {
		return s.failed(ctx, "compare", err)
	}

	response := schedulers.GenerateCompareResponse(comparison)
	response.RunId = uuid.NewString()
	s.logger.Debug("comparison served", "run_id", response.RunId, "best", response.Best)
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.SendString("OK")
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}
	result, err := schedulers.Run(algorithm, request.Workload(), s.timeQuantum(request))
	if err != nil {
		return s.failed(ctx, string(algorithm), err)
	}

	response := schedulers.GenerateResponse(result)
	response.RunId = uuid.NewString()
	s.logger.Debug("schedule served",
		"run_id", response.RunId,
		"algorithm", algorithm,
		"processes", len(result.Processes),
		"avg_waiting", result.AverageWaitingTime,
	)
	return ctx.JSON(response)
}

// timeQuantum prefers the quantum sent with the request over the configured one.
func (s *SchedulerHandlerImpl) timeQuantum(request *requests.ScheduleRequests) int {
	if request.TimeQuantum != 0 {
		return request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

func (s *SchedulerHandlerImpl) failed(ctx *fiber.Ctx, op string, err error) error {
	if errors.Is(err, core.ErrInvalidWorkload) || errors.Is(err, schedulers.ErrInvalidQuantum) {
		return badRequest(ctx, err.Error())
	}
	s.logger.Error("can not process request", "op", op, logging.ErrAttr(err))
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return nil, err
	}
	return &request, nil
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
