package model

type CustomerCall struct {
	ID           int64     `json:"call_id"`
	CustomerID   int64     `json:"customer_id"`
	CallDateTime Timestamp `json:"call_date_time"`
	Description  *string   `json:"call_description"`
	OutcomeCode  string    `json:"call_outcome_code"`
	StatusCode   string    `json:"call_status_code"`
}

type CustomerCallCreateRequest struct {
	CustomerID   *int64     `json:"customer_id"`
	CallDateTime *Timestamp `json:"call_date_time"`
	Description  *string    `json:"call_description"`
	OutcomeCode  *string    `json:"call_outcome_code"`
	StatusCode   *string    `json:"call_status_code"`
}

func (p CustomerCallCreateRequest) Validate() error {
	var missing []string
	if p.CustomerID == nil {
		missing = append(missing, "customer_id")
	}
	if p.CallDateTime == nil {
		missing = append(missing, "call_date_time")
	}
	if p.OutcomeCode == nil || *p.OutcomeCode == "" {
		missing = append(missing, "call_outcome_code")
	}
	if p.StatusCode == nil || *p.StatusCode == "" {
		missing = append(missing, "call_status_code")
	}
	if len(missing) > 0 {
		return MissingFields(missing...)
	}
	if *p.CustomerID <= 0 {
		return InvalidRequest("customer_id must be a positive integer")
	}
	return nil
}

// ToCall assumes Validate passed.
func (p CustomerCallCreateRequest) ToCall() *CustomerCall {
	return &CustomerCall{
		CustomerID:   *p.CustomerID,
		CallDateTime: *p.CallDateTime,
		Description:  p.Description,
		OutcomeCode:  *p.OutcomeCode,
		StatusCode:   *p.StatusCode,
	}
}
