package http

import (
	"time"

	"courierservice/internal/core/application/usecases/queries"
	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/core/domain/model/order"
)

type RegisterCourierRequest struct {
	PhoneNumber string `json:"phone_number"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Password    string `json:"password"`
}

type RegisterUserRequest struct {
	RegisterCourierRequest
	AddressRequest
}

type AddressRequest struct {
	City        string `json:"city"`
	Street      string `json:"street"`
	HouseNumber string `json:"house_number"`
}

type TokenRequest struct {
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

type CreateRestaurantRequest struct {
	AddressRequest
	Name             string `json:"name"`
	OpeningTime      string `json:"opening_time"`
	ClosingTime      string `json:"closing_time"`
	DeliveryDuration int    `json:"duration_delivery"`
}

type AccountResponse struct {
	ID          int64  `json:"id"`
	PhoneNumber string `json:"phone_number"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type RestaurantResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type AddressResponse struct {
	City        string `json:"city"`
	Street      string `json:"street"`
	HouseNumber string `json:"house_number"`
}

type OrderSummaryResponse struct {
	ID             int64   `json:"id"`
	Status         string  `json:"status"`
	StartTime      string  `json:"start_time"`
	EndTime        *string `json:"end_time"`
	RestaurantID   int64   `json:"restaurant_id"`
	RestaurantName string  `json:"restaurant_name"`
	UserID         int64   `json:"user_id"`
	CourierID      *int64  `json:"courier_id"`
}

type RestaurantOrderUser struct {
	AccountResponse
	AddressResponse
}

type RestaurantOrderResponse struct {
	ID           int64               `json:"id"`
	Status       string              `json:"status"`
	StartTime    string              `json:"start_time"`
	EndTime      *string             `json:"end_time"`
	RestaurantID int64               `json:"restaurant_id"`
	User         RestaurantOrderUser `json:"user"`
	Courier      *AccountResponse    `json:"courier"`
}

// CourierOrderResponse serves both the available orders and a courier's own
// orders; EndTime stays null for orders not delivered yet.
type CourierOrderResponse struct {
	ID                int64           `json:"id"`
	Status            string          `json:"status"`
	StartTime         string          `json:"start_time"`
	EndTime           *string         `json:"end_time"`
	RestaurantID      int64           `json:"restaurant_id"`
	RestaurantName    string          `json:"restaurant_name"`
	RestaurantAddress AddressResponse `json:"restaurant_address"`
	UserAddress       AddressResponse `json:"user_address"`
}

type UserOrderResponse struct {
	ID               int64   `json:"id"`
	Status           string  `json:"status"`
	RestaurantName   string  `json:"restaurant_name"`
	StartTime        string  `json:"start_time"`
	EndTime          *string `json:"end_time"`
	CourierName      *string `json:"courier_name"`
	DeliveryDuration int     `json:"duration_delivery"`
}

type ShippingCostResponse struct {
	ShippingCost int `json:"shipping_cost"`
}

type PlacedOrderResponse struct {
	ID           int64  `json:"id"`
	Status       string `json:"status"`
	StartTime    string `json:"start_time"`
	RestaurantID int64  `json:"restaurant_id"`
	ShippingCost int    `json:"shipping_cost"`
}

// timeFormatter renders timestamps in the service time zone.
type timeFormatter struct {
	location *time.Location
}

func (f timeFormatter) format(t time.Time) string {
	return t.In(f.location).Format(time.RFC3339)
}

func (f timeFormatter) formatPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := f.format(*t)
	return &formatted
}

func accountResponse(id kernel.ID, person kernel.Person) AccountResponse {
	return AccountResponse{
		ID:          id.Int64(),
		PhoneNumber: person.Phone().String(),
		Name:        person.Name(),
		Surname:     person.Surname(),
	}
}

func addressResponse(address queries.Address) AddressResponse {
	return AddressResponse(address)
}

func (f timeFormatter) orderSummaries(orders []queries.OrderSummary) []OrderSummaryResponse {
	response := make([]OrderSummaryResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderSummaryResponse{
			ID:             o.ID,
			Status:         o.Status,
			StartTime:      f.format(o.StartTime),
			EndTime:        f.formatPtr(o.EndTime),
			RestaurantID:   o.RestaurantID,
			RestaurantName: o.RestaurantName,
			UserID:         o.UserID,
			CourierID:      o.CourierID,
		}
	}
	return response
}

func (f timeFormatter) restaurantOrder(detail queries.RestaurantOrderDetail) RestaurantOrderResponse {
	response := RestaurantOrderResponse{
		ID:           detail.ID,
		Status:       detail.Status,
		StartTime:    f.format(detail.StartTime),
		EndTime:      f.formatPtr(detail.EndTime),
		RestaurantID: detail.RestaurantID,
		User: RestaurantOrderUser{
			AccountResponse: AccountResponse{
				ID:          detail.User.ID,
				PhoneNumber: detail.User.PhoneNumber,
				Name:        detail.User.Name,
				Surname:     detail.User.Surname,
			},
			AddressResponse: addressResponse(detail.User.Address),
		},
	}
	if c := detail.Courier; c != nil {
		response.Courier = &AccountResponse{
			ID:          c.ID,
			PhoneNumber: c.PhoneNumber,
			Name:        c.Name,
			Surname:     c.Surname,
		}
	}
	return response
}

func (f timeFormatter) availableOrders(orders []queries.AvailableOrder) []CourierOrderResponse {
	response := make([]CourierOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = CourierOrderResponse{
			ID:                o.ID,
			Status:            order.Searching.String(),
			StartTime:         f.format(o.StartTime),
			RestaurantID:      o.RestaurantID,
			RestaurantName:    o.RestaurantName,
			RestaurantAddress: addressResponse(o.RestaurantAddress),
			UserAddress:       addressResponse(o.UserAddress),
		}
	}
	return response
}

func (f timeFormatter) courierOrders(orders []queries.CourierOrder) []CourierOrderResponse {
	response := make([]CourierOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = CourierOrderResponse{
			ID:                o.ID,
			Status:            o.Status,
			StartTime:         f.format(o.StartTime),
			EndTime:           f.formatPtr(o.EndTime),
			RestaurantID:      o.RestaurantID,
			RestaurantName:    o.RestaurantName,
			RestaurantAddress: addressResponse(o.RestaurantAddress),
			UserAddress:       addressResponse(o.UserAddress),
		}
	}
	return response
}

func (f timeFormatter) userOrder(detail queries.UserOrderDetail) UserOrderResponse {
	return UserOrderResponse{
		ID:               detail.ID,
		Status:           detail.Status,
		RestaurantName:   detail.RestaurantName,
		StartTime:        f.format(detail.StartTime),
		EndTime:          f.formatPtr(detail.EndTime),
		CourierName:      detail.CourierName,
		DeliveryDuration: detail.DeliveryDurationMinutes,
	}
}
