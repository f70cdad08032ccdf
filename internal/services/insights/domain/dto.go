// DTOs for the insights http surface
package domain

// ScanMessage is one message in a scan request
type ScanMessage struct {
	Ref     string `json:"ref"     validate:"required,min=1,max=200" example:"msg-001"`
	Subject string `json:"subject" validate:"omitempty,max=500"      example:"Q3 planning"`
	Body    string `json:"body"    example:"Can you please complete the report by Friday?"`
}

// ScanRequest is the POST /insights/scan payload
type ScanRequest struct {
	Name          string        `json:"name,omitempty"            validate:"omitempty,max=200"     example:"John"`
	MaxBodyLength int           `json:"max_body_length,omitempty" validate:"omitempty,min=1"       example:"100000"`
	Workers       int           `json:"workers,omitempty"         validate:"omitempty,min=1,max=32" example:"4"`
	Persist       bool          `json:"persist,omitempty"`
	Messages      []ScanMessage `json:"messages"                  validate:"required,min=1,max=1000,dive"`
}

// ScanResponse wraps a finished report, with the scan id when persisted
type ScanResponse struct {
	ScanID string `json:"scan_id,omitempty"`
	Report Report `json:"report"`
}
