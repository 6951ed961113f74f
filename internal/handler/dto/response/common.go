package response

type CreatedResponse struct {
	ID int32 `json:"id"`
}
