package entity

type RestaurantTable struct {
	ID          int     `json:"id"`
	TableNumber int     `json:"table_number"`
	Note        *string `json:"note"`
}
