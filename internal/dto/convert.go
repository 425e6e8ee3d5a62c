package dto

// ConvertRequest defines the input for a currency conversion.
type ConvertRequest struct {
	FromCode string  `json:"fromCode" binding:"required,uppercase,len=3"`
	ToCode   string  `json:"toCode" binding:"required,uppercase,len=3"`
	Amount   float64 `json:"amount"`
}

// ConvertResult defines the outcome of a currency conversion. Converted is
// the raw floating-point result; Formatted is the same amount rounded to
// display precision.
type ConvertResult struct {
	FromCode  string  `json:"fromCode"`
	ToCode    string  `json:"toCode"`
	Amount    float64 `json:"amount"`
	Converted float64 `json:"converted"`
	Formatted string  `json:"formatted"`
}
