package customers

import (
	"time"

	"github.com/google/uuid"

	"github.com/driesvermeulen/loadline-backend/pkg/db/models"
)

// CustomerDTO is the transport shape for a customer profile.
type CustomerDTO struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AddressDTO is the transport shape for an address book entry.
type AddressDTO struct {
	ID          uuid.UUID `json:"id"`
	StreetName  string    `json:"street_name"`
	HouseNumber string    `json:"house_number"`
	City        string    `json:"city"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toCustomerDTO(customer *models.Customer) *CustomerDTO {
	if customer == nil {
		return nil
	}
	return &CustomerDTO{
		ID:        customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
		Phone:     customer.Phone,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}

func toAddressDTO(address *models.Address) *AddressDTO {
	if address == nil {
		return nil
	}
	return &AddressDTO{
		ID:          address.ID,
		StreetName:  address.StreetName,
		HouseNumber: address.HouseNumber,
		City:        address.City,
		PhoneNumber: address.PhoneNumber,
		CreatedAt:   address.CreatedAt,
	}
}

func toAddressDTOs(addresses []models.Address) []AddressDTO {
	out := make([]AddressDTO, 0, len(addresses))
	for i := range addresses {
		out = append(out, *toAddressDTO(&addresses[i]))
	}
	return out
}
