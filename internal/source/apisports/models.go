package apisports

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// Envelope is the common wrapper of every API-Football response.
type Envelope struct {
	Get      string          `json:"get"`
	Errors   json.RawMessage `json:"errors"`
	Results  int             `json:"results"`
	Paging   Paging          `json:"paging"`
	Response json.RawMessage `json:"response"`
}

type Paging struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// errorText flattens the errors field, which the API sends as either an
// empty array or an object keyed by error kind.
func (e *Envelope) errorText() string {
	raw := bytes.TrimSpace(e.Errors)
	if len(raw) == 0 || bytes.Equal(raw, []byte("[]")) || bytes.Equal(raw, []byte("{}")) || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var byKind map[string]string
	if err := json.Unmarshal(raw, &byKind); err == nil {
		keys := make([]string, 0, len(byKind))
		for k := range byKind {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+byKind[k])
		}
		return strings.Join(parts, "; ")
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, "; ")
	}

	return string(raw)
}

type APICountry struct {
	Name string  `json:"name"`
	Code *string `json:"code"`
	Flag *string `json:"flag"`
}

type APILeagueEntry struct {
	League  APILeague   `json:"league"`
	Country APICountry  `json:"country"`
	Seasons []APISeason `json:"seasons"`
}

type APILeague struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Type string  `json:"type"`
	Logo *string `json:"logo"`
}

type APISeason struct {
	Year    int    `json:"year"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Current bool   `json:"current"`
}

type APITeamEntry struct {
	Team APITeam `json:"team"`
}

type APITeam struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Code     *string `json:"code"`
	Country  *string `json:"country"`
	Founded  *int    `json:"founded"`
	National bool    `json:"national"`
	Logo     *string `json:"logo"`
}

type APIStatus struct {
	Account struct {
		FirstName string `json:"firstname"`
		LastName  string `json:"lastname"`
		Email     string `json:"email"`
	} `json:"account"`
	Subscription struct {
		Plan   string `json:"plan"`
		End    string `json:"end"`
		Active bool   `json:"active"`
	} `json:"subscription"`
	Requests Quota `json:"requests"`
}

// Quota is the daily request allowance reported by the status endpoint.
type Quota struct {
	Current  int `json:"current"`
	LimitDay int `json:"limit_day"`
}

// Remaining returns how many requests are left today.
func (q Quota) Remaining() int {
	if q.LimitDay <= q.Current {
		return 0
	}
	return q.LimitDay - q.Current
}
