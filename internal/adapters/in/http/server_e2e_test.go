package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"courierservice/cmd"
	"courierservice/internal/adapters/out/credentials"
	"courierservice/internal/adapters/out/postgres/pgtest"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const password = "s3cret"

// ServerE2ETestSuite drives the whole application through HTTP against a
// fresh SQLite database per test.
type ServerE2ETestSuite struct {
	suite.Suite
	db   *gorm.DB
	echo *echo.Echo
}

func (suite *ServerE2ETestSuite) SetupTest() {
	ctx := context.Background()
	db, err := pgtest.OpenSQLite(ctx, suite.T().TempDir())
	suite.Require().NoError(err)

	config, err := cmd.ConfigFromEnv(func(key string) string {
		return map[string]string{
			"SECRET_KEY": "e2e-secret",
			"DB_DRIVER":  cmd.DriverSQLite,
			"LOG_LEVEL":  "error",
		}[key]
	})
	suite.Require().NoError(err)

	root, err := cmd.NewCompositionRoot(config, db, discardLogger(),
		cmd.WithPasswordHasher(credentials.NewBcryptHasherWithCost(bcrypt.MinCost)))
	suite.Require().NoError(err)

	e, err := root.CreateHTTPServer(ctx)
	suite.Require().NoError(err)

	suite.db = db
	suite.echo = e
}

func (suite *ServerE2ETestSuite) TearDownTest() {
	if sqlDB, err := suite.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (suite *ServerE2ETestSuite) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *ServerE2ETestSuite) decode(rec *httptest.ResponseRecorder, target any) {
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), target), rec.Body.String())
}

func (suite *ServerE2ETestSuite) requireDetail(rec *httptest.ResponseRecorder, status int, detail string) {
	suite.Require().Equal(status, rec.Code, rec.Body.String())
	var body map[string]string
	suite.decode(rec, &body)
	suite.Equal(detail, body["detail"])
}

func (suite *ServerE2ETestSuite) registerUser(phone, street string) int64 {
	rec := suite.do(http.MethodPost, "/api/v1/users", map[string]string{
		"phone_number": phone,
		"name":         "Иван",
		"surname":      "Петров",
		"password":     password,
		"street":       street,
		"house_number": "1",
	}, "")
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var body map[string]any
	suite.decode(rec, &body)
	return int64(body["id"].(float64))
}

func (suite *ServerE2ETestSuite) registerCourier(phone string) int64 {
	rec := suite.do(http.MethodPost, "/api/v1/couriers", map[string]string{
		"phone_number": phone,
		"name":         "Олег",
		"surname":      "Сидоров",
		"password":     password,
	}, "")
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var body map[string]any
	suite.decode(rec, &body)
	return int64(body["id"].(float64))
}

func (suite *ServerE2ETestSuite) token(kind, phone string) string {
	rec := suite.do(http.MethodPost, "/api/v1/"+kind+"/token", map[string]string{
		"phone_number": phone,
		"password":     password,
	}, "")
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var body map[string]string
	suite.decode(rec, &body)
	suite.Equal("Bearer", body["token_type"])
	return body["access_token"]
}

func (suite *ServerE2ETestSuite) createRestaurant(name, street string) int64 {
	rec := suite.do(http.MethodPost, "/api/v1/restaurants", map[string]any{
		"name":              name,
		"street":            street,
		"house_number":      "10",
		"opening_time":      "09:00:00",
		"closing_time":      "22:00:00",
		"duration_delivery": 40,
	}, "")
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var body map[string]any
	suite.decode(rec, &body)
	suite.Equal(name, body["name"])
	return int64(body["id"].(float64))
}

func (suite *ServerE2ETestSuite) placeOrder(token string, restaurantID int64) map[string]any {
	rec := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/users/orders/%d", restaurantID), nil, token)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var body map[string]any
	suite.decode(rec, &body)
	return body
}

func (suite *ServerE2ETestSuite) courierWorkStatus(id int64) string {
	var status string
	suite.Require().NoError(suite.db.Table("couriers").Select("work_status").Where("id = ?", id).Scan(&status).Error)
	return status
}

func (suite *ServerE2ETestSuite) TestHealth() {
	rec := suite.do(http.MethodGet, "/health", nil, "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("Healthy", rec.Body.String())
}

func (suite *ServerE2ETestSuite) TestSwaggerServesDocument() {
	rec := suite.do(http.MethodGet, "/swagger/doc.json", nil, "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "/api/v1/couriers/orders/{order_id}")
}

func (suite *ServerE2ETestSuite) TestRegisterUserTwice() {
	rec := suite.do(http.MethodPost, "/api/v1/users", map[string]string{
		"phone_number": "+79999999999",
		"name":         "Иван",
		"surname":      "Петров",
		"password":     password,
		"street":       "Ленина",
		"house_number": "1",
	}, "")
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var created map[string]any
	suite.decode(rec, &created)
	suite.EqualValues(1, created["id"])
	suite.Equal("+79999999999", created["phone_number"])
	suite.NotContains(rec.Body.String(), "password")

	rec = suite.do(http.MethodPost, "/api/v1/users", map[string]string{
		"phone_number": "+79999999999",
		"name":         "Пётр",
		"surname":      "Иванов",
		"password":     "other",
		"street":       "Ленина",
		"house_number": "2",
	}, "")
	suite.requireDetail(rec, http.StatusBadRequest, "user already registered")
}

func (suite *ServerE2ETestSuite) TestRegisterCourierTwice() {
	suite.registerCourier("+79990000101")

	rec := suite.do(http.MethodPost, "/api/v1/couriers", map[string]string{
		"phone_number": "+79990000101",
		"name":         "Олег",
		"surname":      "Сидоров",
		"password":     password,
	}, "")
	suite.requireDetail(rec, http.StatusBadRequest, "courier already registered")
}

func (suite *ServerE2ETestSuite) TestRegisterRejectsBadInput() {
	rec := suite.do(http.MethodPost, "/api/v1/couriers", map[string]string{
		"phone_number": "not a phone",
		"name":         "Олег",
		"surname":      "Сидоров",
		"password":     password,
	}, "")
	suite.requireDetail(rec, http.StatusBadRequest, "invalid phone number format")

	rec = suite.do(http.MethodPost, "/api/v1/users", map[string]string{
		"phone_number": "+79990000001",
		"name":         "Иван",
		"surname":      "Петров",
		"password":     password,
	}, "")
	suite.Require().Equal(http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	var detail map[string]string
	suite.decode(rec, &detail)
	suite.Contains(detail["detail"], "street")
	suite.NotContains(detail["detail"], "allOf")
}

func (suite *ServerE2ETestSuite) TestTokenRejectsWrongPassword() {
	suite.registerUser("+79990000001", "Ленина")

	rec := suite.do(http.MethodPost, "/api/v1/users/token", map[string]string{
		"phone_number": "+79990000001",
		"password":     "wrong",
	}, "")
	suite.requireDetail(rec, http.StatusUnauthorized, "invalid phone number or password")
	suite.Equal("Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))

	rec = suite.do(http.MethodPost, "/api/v1/couriers/token", map[string]string{
		"phone_number": "+79990000001",
		"password":     password,
	}, "")
	suite.requireDetail(rec, http.StatusUnauthorized, "invalid phone number or password")
}

func (suite *ServerE2ETestSuite) TestAuthentication() {
	suite.registerUser("+79990000001", "Ленина")
	suite.registerCourier("+79990000101")
	userToken := suite.token("users", "+79990000001")
	courierToken := suite.token("couriers", "+79990000101")

	rec := suite.do(http.MethodGet, "/api/v1/couriers/available_orders", nil, "")
	suite.requireDetail(rec, http.StatusUnauthorized, "Not authenticated")
	suite.Equal("Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))

	rec = suite.do(http.MethodGet, "/api/v1/users/orders", nil, "garbage")
	suite.requireDetail(rec, http.StatusUnauthorized, "Not authenticated")

	rec = suite.do(http.MethodGet, "/api/v1/couriers/available_orders", nil, userToken)
	suite.requireDetail(rec, http.StatusForbidden, "only couriers can access this resource")

	rec = suite.do(http.MethodGet, "/api/v1/users/orders", nil, courierToken)
	suite.requireDetail(rec, http.StatusForbidden, "only users can access this resource")

	rec = suite.do(http.MethodGet, "/api/v1/users/orders", nil, userToken)
	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq("[]", rec.Body.String())
}

func (suite *ServerE2ETestSuite) TestRestaurants() {
	id := suite.createRestaurant("Пиццерия", "Республики")

	rec := suite.do(http.MethodPost, "/api/v1/restaurants", map[string]any{
		"name":              "Пиццерия",
		"street":            "Ленина",
		"house_number":      "5",
		"opening_time":      "10:00:00",
		"closing_time":      "20:00:00",
		"duration_delivery": 30,
	}, "")
	suite.requireDetail(rec, http.StatusBadRequest, "restaurant with this name already exists")

	rec = suite.do(http.MethodGet, fmt.Sprintf("/api/v1/restaurants/%d/orders", id), nil, "")
	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq("[]", rec.Body.String())

	rec = suite.do(http.MethodGet, "/api/v1/restaurants/99/orders", nil, "")
	suite.requireDetail(rec, http.StatusNotFound, "restaurant not found")

	rec = suite.do(http.MethodPost, "/api/v1/restaurants", map[string]any{
		"name":              "Бургерная",
		"street":            "Ленина",
		"house_number":      "5",
		"opening_time":      "10:00:00",
		"closing_time":      "20:00:00",
		"duration_delivery": 0,
	}, "")
	suite.Require().Equal(http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	var detail map[string]string
	suite.decode(rec, &detail)
	suite.Contains(detail["detail"], "duration_delivery")
	suite.NotContains(detail["detail"], "allOf")

	rec = suite.do(http.MethodGet, "/api/v1/restaurants/abc/orders", nil, "")
	suite.Equal(http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
}

func (suite *ServerE2ETestSuite) TestPlaceOrder() {
	suite.registerUser("+79990000001", "Республики")
	token := suite.token("users", "+79990000001")
	restaurantID := suite.createRestaurant("Пиццерия", "Республики")

	placed := suite.placeOrder(token, restaurantID)
	suite.EqualValues(1, placed["id"])
	suite.Equal("SEARCHING", placed["status"])
	suite.EqualValues(restaurantID, placed["restaurant_id"])
	suite.EqualValues(50, placed["shipping_cost"])
	suite.True(strings.HasSuffix(placed["start_time"].(string), "+05:00"), placed["start_time"])

	rec := suite.do(http.MethodPost, "/api/v1/users/orders/42", nil, token)
	suite.requireDetail(rec, http.StatusNotFound, "cannot place order, restaurant not found")

	rec = suite.do(http.MethodGet, fmt.Sprintf("/api/v1/users/shipping_cost/%d", restaurantID), nil, token)
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`{"shipping_cost": 50}`, rec.Body.String())

	rec = suite.do(http.MethodGet, "/api/v1/users/shipping_cost/42", nil, token)
	suite.requireDetail(rec, http.StatusNotFound, "restaurant not found")

	rec = suite.do(http.MethodGet, "/api/v1/users/orders?active", nil, token)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var orders []map[string]any
	suite.decode(rec, &orders)
	suite.Require().Len(orders, 1)
	suite.Equal("Пиццерия", orders[0]["restaurant_name"])
	suite.Nil(orders[0]["courier_id"])
}

func (suite *ServerE2ETestSuite) TestClaimAndCompleteOrder() {
	suite.registerUser("+79990000001", "Ленина")
	userToken := suite.token("users", "+79990000001")
	restaurantID := suite.createRestaurant("Пиццерия", "Республики")
	firstCourier := suite.registerCourier("+79990000101")
	suite.registerCourier("+79990000102")
	firstToken := suite.token("couriers", "+79990000101")
	secondToken := suite.token("couriers", "+79990000102")

	for range 7 {
		suite.placeOrder(userToken, restaurantID)
	}

	rec := suite.do(http.MethodGet, "/api/v1/couriers/available_orders", nil, firstToken)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var available []map[string]any
	suite.decode(rec, &available)
	suite.Require().Len(available, 7)
	suite.EqualValues(1, available[0]["id"])
	suite.Equal("Республики", available[0]["restaurant_address"].(map[string]any)["street"])
	suite.Equal("Ленина", available[0]["user_address"].(map[string]any)["street"])

	rec = suite.do(http.MethodPost, "/api/v1/couriers/orders/7", nil, firstToken)
	suite.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	suite.Equal("BUSY", suite.courierWorkStatus(firstCourier))

	rec = suite.do(http.MethodPost, "/api/v1/couriers/orders/7", nil, secondToken)
	suite.requireDetail(rec, http.StatusNotFound, "order not found")

	rec = suite.do(http.MethodPost, "/api/v1/couriers/orders/6", nil, firstToken)
	suite.requireDetail(rec, http.StatusBadRequest, "courier already has an active order")

	rec = suite.do(http.MethodPut, "/api/v1/couriers/orders/7", nil, secondToken)
	suite.requireDetail(rec, http.StatusNotFound, "order not found")

	rec = suite.do(http.MethodGet, "/api/v1/couriers/orders", nil, firstToken)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var active []map[string]any
	suite.decode(rec, &active)
	suite.Require().Len(active, 1)
	suite.EqualValues(7, active[0]["id"])
	suite.Equal("IN_TRANSIT", active[0]["status"])

	rec = suite.do(http.MethodPut, "/api/v1/couriers/orders/7", nil, firstToken)
	suite.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	suite.Equal("AVAILABLE", suite.courierWorkStatus(firstCourier))

	rec = suite.do(http.MethodGet, fmt.Sprintf("/api/v1/restaurants/%d/orders/7", restaurantID), nil, "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	var detail map[string]any
	suite.decode(rec, &detail)
	suite.Equal("DELIVERED", detail["status"])
	suite.NotNil(detail["end_time"])
	suite.EqualValues(firstCourier, detail["courier"].(map[string]any)["id"])
	suite.Equal("Ленина", detail["user"].(map[string]any)["street"])

	rec = suite.do(http.MethodGet, "/api/v1/users/orders/7", nil, userToken)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var userOrder map[string]any
	suite.decode(rec, &userOrder)
	suite.Equal("Олег Сидоров", userOrder["courier_name"])
	suite.EqualValues(40, userOrder["duration_delivery"])
	suite.NotNil(userOrder["end_time"])

	rec = suite.do(http.MethodGet, "/api/v1/couriers/orders?all_orders", nil, firstToken)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var history []map[string]any
	suite.decode(rec, &history)
	suite.Require().Len(history, 1)
	suite.Equal("DELIVERED", history[0]["status"])

	rec = suite.do(http.MethodGet, fmt.Sprintf("/api/v1/restaurants/%d/orders?active", restaurantID), nil, "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	var restaurantActive []map[string]any
	suite.decode(rec, &restaurantActive)
	suite.Len(restaurantActive, 6)

	rec = suite.do(http.MethodPost, "/api/v1/couriers/orders/6", nil, firstToken)
	suite.Equal(http.StatusNoContent, rec.Code, rec.Body.String())
}

func (suite *ServerE2ETestSuite) TestOrdersAreScopedToOwners() {
	suite.registerUser("+79990000001", "Ленина")
	suite.registerUser("+79990000002", "Мира")
	owner := suite.token("users", "+79990000001")
	stranger := suite.token("users", "+79990000002")
	first := suite.createRestaurant("Пиццерия", "Республики")
	second := suite.createRestaurant("Суши", "Мельникайте")
	suite.placeOrder(owner, first)

	rec := suite.do(http.MethodGet, "/api/v1/users/orders/1", nil, stranger)
	suite.requireDetail(rec, http.StatusNotFound, "order not found")

	rec = suite.do(http.MethodGet, fmt.Sprintf("/api/v1/restaurants/%d/orders/1", second), nil, "")
	suite.requireDetail(rec, http.StatusNotFound, "order with these restaurant_id and order_id not found")
}

func TestServerE2ETestSuite(t *testing.T) {
	suite.Run(t, new(ServerE2ETestSuite))
}
