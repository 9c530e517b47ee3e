package customer

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationOrigin tags where a customer record entered the system.
type RegistrationOrigin string

const (
	OriginQuickReservation RegistrationOrigin = "reserva_presencial"
	OriginWeb              RegistrationOrigin = "web"
	OriginImport           RegistrationOrigin = "importacion"
)

// Customer is the identity record the upsert-by-contact flow maintains. A
// customer is matched by phone or email before a duplicate is ever created;
// on match the contact and bookkeeping fields are merged in place.
type Customer struct {
	id                uuid.UUID
	firstName         PersonName
	lastName          PersonName
	phone             Phone
	email             Email
	dietaryNotes      string
	internalNotes     string
	lastReservationAt *time.Time
	active            bool
	origin            RegistrationOrigin
}

func NewCustomer(firstName, lastName PersonName, phone Phone, email Email, origin RegistrationOrigin) *Customer {
	return &Customer{
		id:        uuid.New(),
		firstName: firstName,
		lastName:  lastName,
		phone:     phone,
		email:     email,
		active:    true,
		origin:    origin,
	}
}

func ReconstructCustomer(
	id uuid.UUID,
	firstName, lastName PersonName,
	phone Phone,
	email Email,
	dietaryNotes, internalNotes string,
	lastReservationAt *time.Time,
	active bool,
	origin RegistrationOrigin,
) *Customer {
	return &Customer{
		id:                id,
		firstName:         firstName,
		lastName:          lastName,
		phone:             phone,
		email:             email,
		dietaryNotes:      dietaryNotes,
		internalNotes:     internalNotes,
		lastReservationAt: lastReservationAt,
		active:            active,
		origin:            origin,
	}
}

// MergeContact refreshes the mutable fields from a newer submission, keeping
// the record's identity and origin.
func (c *Customer) MergeContact(firstName, lastName PersonName, phone Phone, email Email, dietaryNotes string, reservedAt time.Time) {
	c.firstName = firstName
	c.lastName = lastName
	c.phone = phone
	c.email = email
	if dietaryNotes != "" {
		c.dietaryNotes = dietaryNotes
	}
	t := reservedAt
	c.lastReservationAt = &t
}

func (c *Customer) ID() uuid.UUID                 { return c.id }
func (c *Customer) FirstName() PersonName         { return c.firstName }
func (c *Customer) LastName() PersonName          { return c.lastName }
func (c *Customer) Phone() Phone                  { return c.phone }
func (c *Customer) Email() Email                  { return c.email }
func (c *Customer) DietaryNotes() string          { return c.dietaryNotes }
func (c *Customer) InternalNotes() string         { return c.internalNotes }
func (c *Customer) LastReservationAt() *time.Time { return c.lastReservationAt }
func (c *Customer) IsActive() bool                { return c.active }
func (c *Customer) Origin() RegistrationOrigin    { return c.origin }
