package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/pizzeria/internal/middleware"
	"github.com/deppfellow/pizzeria/internal/model"
	"github.com/deppfellow/pizzeria/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	. "github.com/smartystreets/goconvey/convey"
)

func TestHandleLogging(t *testing.T) {
	Convey("Given a handler whose service fails", t, func() {
		var serverLog bytes.Buffer
		logger := zerolog.New(&serverLog)
		h := NewHandler(&server.Server{Logger: &logger})

		failing := Handle(
			h,
			func(c echo.Context, payload *model.ListPizzasPayload) ([]model.Pizza, error) {
				return nil, errors.New("connection refused")
			},
			http.StatusOK,
			&model.ListPizzasPayload{},
		)

		e := echo.New()
		newContext := func() echo.Context {
			return e.NewContext(httptest.NewRequest(http.MethodGet, "/pizzas", nil), httptest.NewRecorder())
		}

		Convey("Without a request logger the server logger records the failure", func() {
			So(failing(newContext()), ShouldNotBeNil)
			So(serverLog.String(), ShouldContainSubstring, "handler execution failed")
			So(serverLog.String(), ShouldContainSubstring, "connection refused")
		})

		Convey("A request logger takes precedence", func() {
			var requestLog bytes.Buffer
			requestLogger := zerolog.New(&requestLog)

			c := newContext()
			c.Set(middleware.LoggerKey, &requestLogger)

			So(failing(c), ShouldNotBeNil)
			So(requestLog.String(), ShouldContainSubstring, "handler execution failed")
			So(serverLog.Len(), ShouldEqual, 0)
		})
	})
}
