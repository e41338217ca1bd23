package entity

type Menu struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	CookTimeSeconds int    `json:"cook_time_seconds"`
	Price           int    `json:"price"`
}
