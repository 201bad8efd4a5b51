package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/pizzeria/internal/config"
	"github.com/deppfellow/pizzeria/internal/handler"
	"github.com/deppfellow/pizzeria/internal/lib/metrics"
	"github.com/deppfellow/pizzeria/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestRouter(st *store) *echo.Echo {
	logger := zerolog.Nop()

	s := &server.Server{
		Config:  config.DefaultConfig(),
		Logger:  &logger,
		Metrics: metrics.New(),
	}

	h := &handler.Handlers{
		Index:           handler.NewIndexHandler(s),
		Restaurant:      handler.NewRestaurantHandler(s, st),
		Pizza:           handler.NewPizzaHandler(s, st),
		RestaurantPizza: handler.NewRestaurantPizzaHandler(s, st),
		Health:          handler.NewHealthHandler(s),
		OpenAPI:         handler.NewOpenAPIHandler(s),
	}

	return NewRouter(s, h)
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(rec *httptest.ResponseRecorder, v any) error {
	return json.Unmarshal(rec.Body.Bytes(), v)
}

const validationBody = `{"errors":["validation errors"]}`

func TestRestaurantRoutes(t *testing.T) {
	Convey("Given the seeded router", t, func() {
		st := newStore()
		e := newTestRouter(st)

		Convey("GET / serves the index page", func() {
			rec := do(e, http.MethodGet, "/", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldEqual, "<h1>Code challenge</h1>")
		})

		Convey("GET /restaurants lists restaurants without their menus", func() {
			rec := do(e, http.MethodGet, "/restaurants", "")
			So(rec.Code, ShouldEqual, http.StatusOK)

			var body []map[string]any
			So(decode(rec, &body), ShouldBeNil)
			So(body, ShouldHaveLength, 3)
			So(body[0], ShouldResemble, map[string]any{"id": 1.0, "name": "Karen's Pizza Shack", "address": "address1"})
		})

		Convey("GET /restaurants/:id includes pizzas", func() {
			rec := do(e, http.MethodGet, "/restaurants/2", "")
			So(rec.Code, ShouldEqual, http.StatusOK)

			var body map[string]any
			So(decode(rec, &body), ShouldBeNil)
			So(body["name"], ShouldEqual, "Sanjay's Pizza")

			menu := body["restaurant_pizzas"].([]any)
			So(menu, ShouldHaveLength, 1)
			entry := menu[0].(map[string]any)
			So(entry["price"], ShouldEqual, 4.0)
			So(entry["pizza"].(map[string]any)["name"], ShouldEqual, "Geri")
		})

		Convey("Unknown and malformed ids are not found", func() {
			for _, target := range []string{"/restaurants/999", "/restaurants/abc", "/restaurants/0", "/restaurants/2147483648"} {
				rec := do(e, http.MethodGet, target, "")
				So(rec.Code, ShouldEqual, http.StatusNotFound)
				So(rec.Body.String(), ShouldEqualJSON, `{"error":"Restaurant not found"}`)
			}
		})

		Convey("DELETE /restaurants/:id removes the restaurant and its menu", func() {
			rec := do(e, http.MethodDelete, "/restaurants/1", "")
			So(rec.Code, ShouldEqual, http.StatusNoContent)
			So(rec.Body.Len(), ShouldEqual, 0)

			So(do(e, http.MethodGet, "/restaurants/1", "").Code, ShouldEqual, http.StatusNotFound)
			for _, rp := range st.restaurantPizzas {
				So(rp.RestaurantID, ShouldNotEqual, 1)
			}

			Convey("and deleting it again is not found", func() {
				rec := do(e, http.MethodDelete, "/restaurants/1", "")
				So(rec.Code, ShouldEqual, http.StatusNotFound)
				So(rec.Body.String(), ShouldEqualJSON, `{"error":"Restaurant not found"}`)
			})
		})

		Convey("Unexpected failures are internal errors", func() {
			st.listErr = errors.New("connection refused")

			rec := do(e, http.MethodGet, "/restaurants", "")
			So(rec.Code, ShouldEqual, http.StatusInternalServerError)
			So(rec.Body.String(), ShouldEqualJSON, `{"error":"Internal Server Error"}`)
		})
	})
}

func TestPizzaRoutes(t *testing.T) {
	Convey("GET /pizzas lists pizzas", t, func() {
		e := newTestRouter(newStore())

		rec := do(e, http.MethodGet, "/pizzas", "")
		So(rec.Code, ShouldEqual, http.StatusOK)

		var body []map[string]any
		So(decode(rec, &body), ShouldBeNil)
		So(body, ShouldHaveLength, 3)
		So(body[2]["ingredients"], ShouldEqual, "Dough, Sauce, Ricotta, Red peppers, Mustard")
	})
}

func TestRestaurantPizzaRoutes(t *testing.T) {
	Convey("Given the seeded router", t, func() {
		e := newTestRouter(newStore())

		Convey("A valid POST creates a populated restaurant pizza", func() {
			rec := do(e, http.MethodPost, "/restaurant_pizzas", `{"price":5,"pizza_id":1,"restaurant_id":3}`)
			So(rec.Code, ShouldEqual, http.StatusCreated)

			var body map[string]any
			So(decode(rec, &body), ShouldBeNil)
			So(body["price"], ShouldEqual, 5.0)
			So(body["pizza_id"], ShouldEqual, 1.0)
			So(body["restaurant_id"], ShouldEqual, 3.0)
			So(body["pizza"].(map[string]any)["name"], ShouldEqual, "Emma")
			So(body["restaurant"].(map[string]any)["name"], ShouldEqual, "Kiki's Pizza")

			Convey("and it appears on the restaurant", func() {
				rec := do(e, http.MethodGet, "/restaurants/3", "")

				var detail map[string]any
				So(decode(rec, &detail), ShouldBeNil)
				menu := detail["restaurant_pizzas"].([]any)
				So(menu, ShouldHaveLength, 2)
				So(menu[1].(map[string]any)["id"], ShouldEqual, body["id"])
			})
		})

		Convey("Invalid payloads are rejected with the generic validation error", func() {
			for _, payload := range []string{
				`{"price":5,"pizza_id":1}`,
				`{"price":5,"pizza_id":99,"restaurant_id":1}`,
				`{"price":5,"pizza_id":1,"restaurant_id":99}`,
				`{"price":0,"pizza_id":1,"restaurant_id":1}`,
				`{"price":31,"pizza_id":1,"restaurant_id":1}`,
				`{"price":"cheap","pizza_id":1,"restaurant_id":1}`,
				`{"price":5,`,
			} {
				rec := do(e, http.MethodPost, "/restaurant_pizzas", payload)
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(rec.Body.String(), ShouldEqualJSON, validationBody)
			}
		})
	})
}

func TestSystemRoutes(t *testing.T) {
	Convey("Given the router", t, func() {
		e := newTestRouter(newStore())

		Convey("Unknown routes are not found", func() {
			rec := do(e, http.MethodGet, "/menus", "")
			So(rec.Code, ShouldEqual, http.StatusNotFound)
			So(rec.Body.String(), ShouldEqualJSON, `{"error":"Route not found"}`)
		})

		Convey("Every response carries a request id", func() {
			rec := do(e, http.MethodGet, "/pizzas", "")
			So(rec.Header().Get("X-Request-ID"), ShouldNotBeEmpty)

			req := httptest.NewRequest(http.MethodGet, "/menus", nil)
			req.Header.Set("X-Request-ID", "req-123")
			rec = httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			So(rec.Header().Get("X-Request-ID"), ShouldEqual, "req-123")
		})

		Convey("The health check passes without dependencies to probe", func() {
			rec := do(e, http.MethodGet, "/status", "")
			So(rec.Code, ShouldEqual, http.StatusOK)

			var body map[string]any
			So(decode(rec, &body), ShouldBeNil)
			So(body["status"], ShouldEqual, "healthy")
		})

		Convey("Docs and their assets are served", func() {
			So(do(e, http.MethodGet, "/docs", "").Code, ShouldEqual, http.StatusOK)

			rec := do(e, http.MethodGet, "/static/openapi.json", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(json.Valid(rec.Body.Bytes()), ShouldBeTrue)
		})

		Convey("Metrics count requests by route template", func() {
			do(e, http.MethodGet, "/restaurants/2", "")
			do(e, http.MethodPost, "/restaurant_pizzas", `{}`)

			rec := do(e, http.MethodGet, "/metrics", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, `pizzeria_http_requests_total{method="GET",route="/restaurants/:id",status_code="200"} 1`)
			So(rec.Body.String(), ShouldContainSubstring, `pizzeria_http_requests_total{method="POST",route="/restaurant_pizzas",status_code="400"} 1`)
			So(rec.Body.String(), ShouldContainSubstring, "pizzeria_validation_failures_total 1")
		})
	})
}
