package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/generator"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
)

const requestIdHeader = "X-Request-ID"

type SchedulerHandler interface {
	Schedule(ctx *fiber.Ctx) error
	ScheduleAlgorithm(ctx *fiber.Ctx) error
	GenerateProcesses(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// Schedule runs every algorithm selected in the request body.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	log := requestLogger(ctx)

	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		log.WithError(err).Warn("invalid request format")
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	return s.run(ctx, log, &request)
}

// ScheduleAlgorithm runs the single algorithm named in the route; the
// algorithms field of the body is ignored.
func (s *SchedulerHandlerImpl) ScheduleAlgorithm(ctx *fiber.Ctx) error {
	log := requestLogger(ctx)

	algorithm, ok := schedulers.ParseAlgorithm(ctx.Params("algorithm"))
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown algorithm " + strconv.Quote(ctx.Params("algorithm"))})
	}

	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		log.WithError(err).Warn("invalid request format")
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	request.Algorithms = schedulers.Only(algorithm)
	return s.run(ctx, log, &request)
}

func (s *SchedulerHandlerImpl) run(ctx *fiber.Ctx, log *logrus.Entry, request *requests.ScheduleRequest) error {
	log.Infof("scheduling %d processes", len(request.Processes))

	results, err := schedulers.Run(request, s.config.EngineOptions(log))
	if err != nil {
		var validationErr *requests.ValidationError
		if errors.As(err, &validationErr) {
			log.WithField("field", validationErr.Field).Warn(validationErr.Message)
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "validation failed",
				"field":   validationErr.Field,
				"message": validationErr.Message,
			})
		}
		log.WithError(err).Error("can not process request")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
	}

	return ctx.JSON(results)
}

// GenerateProcesses returns :count random processes. ?seed= makes the
// workload reproducible.
func (s *SchedulerHandlerImpl) GenerateProcesses(ctx *fiber.Ctx) error {
	log := requestLogger(ctx)

	count, err := strconv.Atoi(ctx.Params("count"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "count must be an integer"})
	}

	seed := time.Now().UnixNano()
	if raw := ctx.Query("seed"); raw != "" {
		if seed, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "seed must be an integer"})
		}
	}

	processes, err := generator.New(s.config.Generator, seed).Processes(count)
	if err != nil {
		log.WithError(err).Warn("can not generate processes")
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	log.WithField("seed", seed).Infof("generated %d processes", count)
	return ctx.JSON(processes)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

// requestLogger tags the request with an id, echoing one supplied by the client.
func requestLogger(ctx *fiber.Ctx) *logrus.Entry {
	id := strings.Clone(ctx.Get(requestIdHeader))
	if id == "" {
		id = uuid.NewString()
	}
	ctx.Set(requestIdHeader, id)
	return logrus.WithFields(logrus.Fields{"request_id": id, "path": strings.Clone(ctx.Path())})
}
