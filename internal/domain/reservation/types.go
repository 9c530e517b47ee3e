package reservation

// Status values mirror the estado column of the reservation store.
type Status string

const (
	StatusPending   Status = "pendiente"
	StatusConfirmed Status = "confirmada"
	StatusSeated    Status = "sentada"
	StatusCanceled  Status = "cancelada"
	StatusNoShow    Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusSeated, StatusCanceled, StatusNoShow:
		return true
	default:
		return false
	}
}

// Origin tags how a reservation entered the system.
type Origin string

const (
	OriginQuick Origin = "presencial"
	OriginWeb   Origin = "web"
	OriginPhone Origin = "telefono"
)

func (o Origin) String() string {
	return string(o)
}
