package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/dashboard-backend/internal/weather"
)

// SpeedPayloadSize is the body size served by GET /speed.
const SpeedPayloadSize = 50 * 1024

var validate = validator.New()

// speedPayload is shared read-only by every /speed response.
var speedPayload = make([]byte, SpeedPayloadSize)

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	app.Get("/weather", func(c *fiber.Ctx) error {
		loc, err := parseCoordinatesQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		resp, err := service.GetWeather(c.UserContext(), loc)
		if err != nil {
			if errors.Is(err, weather.ErrUpstream) {
				return fiber.NewError(fiber.StatusBadGateway, "forecast unavailable: "+err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to build forecast")
		}

		return c.JSON(resp)
	})

	app.Get("/speed", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
		return c.Send(speedPayload)
	})

	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"pong": true})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		var upstream *weather.ProbeResult
		if probe, err := service.LatestProbe(); err == nil {
			upstream = &probe
		}
		return c.JSON(fiber.Map{
			"status":   "ok",
			"service":  AppName,
			"upstream": upstream,
		})
	})
}

// coordinatesQuery holds the raw query parameters of GET /weather.
// They are bound as strings so an empty `lat=` fails `required` instead of becoming 0.
type coordinatesQuery struct {
	Lat string `query:"lat" validate:"required"`
	Lon string `query:"lon" validate:"required"`
}

func parseCoordinatesQuery(c *fiber.Ctx) (weather.Coordinates, error) {
	var q coordinatesQuery

	if err := c.QueryParser(&q); err != nil {
		return weather.Coordinates{}, err
	}

	if err := validate.Struct(q); err != nil {
		return weather.Coordinates{}, err
	}

	lat, err := strconv.ParseFloat(q.Lat, 64)
	if err != nil {
		return weather.Coordinates{}, errors.New("lat must be a number")
	}
	lon, err := strconv.ParseFloat(q.Lon, 64)
	if err != nil {
		return weather.Coordinates{}, errors.New("lon must be a number")
	}

	return weather.Coordinates{Lat: lat, Lon: lon}, nil
}
