package event

import (
	"time"
)

type CustomerEventPayload struct {
	CustomerID int64     `json:"customerId"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Income     string    `json:"income"`
	ZipCode    string    `json:"zipCode"`
	Street     string    `json:"street"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CustomerCreatedEvent struct {
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type CustomerUpdatedEvent struct {
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type CustomerDeletedEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	CustomerID int64     `json:"customerId"`
}

type CreditIssuedEvent struct {
	Timestamp            time.Time `json:"timestamp"`
	CreditCode           string    `json:"creditCode"`
	CustomerID           int64     `json:"customerId"`
	CreditValue          string    `json:"creditValue"`
	DayFirstInstallment  string    `json:"dayFirstInstallment"`
	NumberOfInstallments int       `json:"numberOfInstallments"`
	Status               string    `json:"status"`
}
