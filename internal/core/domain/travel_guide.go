package domain

// TravelGuideState is the top level of the travel guide hierarchy.
type TravelGuideState struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// TravelGuideCity belongs to a state.
type TravelGuideCity struct {
	ID          string `json:"id"`
	StateID     string `json:"stateId"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// TravelGuideData is a content entry (attraction, food, stay...) for a city.
type TravelGuideData struct {
	ID       string   `json:"id"`
	CityID   string   `json:"cityId"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Content  string   `json:"content,omitempty"`
	Images   []string `json:"images,omitempty"`
}

type TravelGuideStateList struct {
	States     []TravelGuideState `json:"states"`
	Pagination Pagination         `json:"pagination"`
}

type TravelGuideCityList struct {
	Cities     []TravelGuideCity `json:"cities"`
	Pagination Pagination        `json:"pagination"`
}

type TravelGuideDataList struct {
	Data       []TravelGuideData `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// TravelGuidePlaceInput creates or edits a state or a city. StateID is only read for cities.
type TravelGuidePlaceInput struct {
	Name        string `validate:"required"`
	StateID     string
	Description string
	Image       *Upload
}

type TravelGuideDataInput struct {
	CityID   string `validate:"required"`
	Title    string `validate:"required"`
	Category string `validate:"required"`
	Content  string
	Images   []Upload
}
