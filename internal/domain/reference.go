package domain

type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type City struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CountryID int64  `json:"country_id"`
}

type Airport struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	CityID int64  `json:"city_id"`
}

type AirplaneType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Airplane defines the seat grid used to validate ticket requests:
// rows are numbered 1..Rows, seats within a row 1..SeatsInRows.
type Airplane struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Rows           int    `json:"rows"`
	SeatsInRows    int    `json:"seats_in_rows"`
	AirplaneTypeID int64  `json:"airplane_type_id"`
}

type Crew struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Route struct {
	ID            int64 `json:"id"`
	SourceID      int64 `json:"source_id"`
	DestinationID int64 `json:"destination_id"`
	Distance      int   `json:"distance"`
}
