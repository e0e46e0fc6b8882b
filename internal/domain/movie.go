package domain

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProductionCompany struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	LogoPath      string `json:"logo_path"`
	OriginCountry string `json:"origin_country"`
}

type ProductionCountry struct {
	ISO3166_1 string `json:"iso_3166_1"`
	Name      string `json:"name"`
}

type SpokenLanguage struct {
	ISO639_1    string `json:"iso_639_1"`
	EnglishName string `json:"english_name"`
	Name        string `json:"name"`
}

// Movie is the record returned by the movie details endpoint. Every field is
// optional; zero values mean the API omitted it.
type Movie struct {
	ID                  int64               `json:"id"`
	IMDBID              string              `json:"imdb_id"`
	Title               string              `json:"title"`
	OriginalTitle       string              `json:"original_title"`
	Tagline             string              `json:"tagline"`
	Overview            string              `json:"overview"`
	VoteAverage         float64             `json:"vote_average"`
	VoteCount           int64               `json:"vote_count"`
	Runtime             int                 `json:"runtime"`
	ReleaseDate         string              `json:"release_date"`
	Status              string              `json:"status"`
	OriginalLanguage    string              `json:"original_language"`
	Homepage            string              `json:"homepage"`
	Genres              []Genre             `json:"genres"`
	Budget              int64               `json:"budget"`
	Revenue             int64               `json:"revenue"`
	PosterPath          string              `json:"poster_path"`
	BackdropPath        string              `json:"backdrop_path"`
	ProductionCompanies []ProductionCompany `json:"production_companies"`
	ProductionCountries []ProductionCountry `json:"production_countries"`
	SpokenLanguages     []SpokenLanguage    `json:"spoken_languages"`
}

// Empty reports whether the record carries nothing worth rendering.
func (m *Movie) Empty() bool {
	return m == nil || (m.ID == 0 && m.Title == "")
}
