package fixtures

import (
	"github.com/zha7nea/callcenter/internal/model"
)

// Bootstrap admin used only by tests and the dev seed.
const (
	AdminUsername = "admin"
	AdminPassword = "admin"
)

var (
	AdminCredentials = model.Credentials{Username: ptr(AdminUsername), Password: ptr(AdminPassword)}
	UserCredentials  = model.Credentials{Username: ptr("agent"), Password: ptr("agent-password")}
)

var ValidCallDateTimes = []string{
	"2024-12-12 12:00:00",
	"2024-12-12T12:00:00",
	"2024-12-12T12:00:00Z",
}

var InvalidCallDateTimes = []string{
	"",
	"12/12/2024",
	"2024-13-01 00:00:00",
	"yesterday",
}

func NewCustomerCreateRequest(details string) model.CustomerCreateRequest {
	return model.CustomerCreateRequest{OtherDetails: ptr(details)}
}

func NewCustomerCallCreateRequest(customerID int64, at string) model.CustomerCallCreateRequest {
	ts, err := model.ParseTimestamp(at)
	if err != nil {
		panic(err)
	}
	return model.CustomerCallCreateRequest{
		CustomerID:   &customerID,
		CallDateTime: &ts,
		Description:  ptr("Customer asked about billing"),
		OutcomeCode:  ptr("OC1"),
		StatusCode:   ptr("SC1"),
	}
}

func ptr(s string) *string {
	return &s
}
