package domain

// Country is keyed by name: entries such as "World" carry no code.
type Country struct {
	Name string  `db:"name"`
	Code *string `db:"code"`
	Flag *string `db:"flag"`
}

type League struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Type        string  `db:"type"`
	Logo        *string `db:"logo"`
	CountryName string  `db:"country_name"`
	Season      int     `db:"season"`

	// Country is the full country entry the API nests in a league, if any.
	Country *Country `db:"-"`
}

type Team struct {
	ID       int64   `db:"id"`
	Name     string  `db:"name"`
	Code     *string `db:"code"`
	Country  *string `db:"country"`
	Founded  *int    `db:"founded"`
	Logo     *string `db:"logo"`
	LeagueID int64   `db:"league_id"`
	Season   int     `db:"season"`
}
