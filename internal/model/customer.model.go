package model

type Customer struct {
	ID           int64   `json:"customer_id"`
	OtherDetails *string `json:"customer_other_details"`
}

type CustomerCreateRequest struct {
	OtherDetails *string `json:"customer_other_details"`
}

func (p CustomerCreateRequest) Validate() error {
	if p.OtherDetails == nil {
		return MissingFields("customer_other_details")
	}
	return nil
}

// CustomerUpdateRequest replaces other_details; the field is mandatory.
type CustomerUpdateRequest struct {
	OtherDetails *string `json:"customer_other_details"`
}

func (p CustomerUpdateRequest) Validate() error {
	if p.OtherDetails == nil {
		return MissingFields("customer_other_details")
	}
	return nil
}
