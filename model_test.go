package arrow

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type role string

const (
	roleAdmin role = "admin"
	roleGuest role = "guest"
)

func (r role) RawValue() string {
	return string(r)
}

func (r role) FromRaw(raw string) (role, bool) {
	switch candidate := role(raw); candidate {
	case roleAdmin, roleGuest:
		return candidate, true
	}
	return "", false
}

type priority int

const (
	priorityLow  priority = 1
	priorityHigh priority = 2
)

func (p priority) RawValue() int {
	return int(p)
}

func (p priority) FromRaw(raw int) (priority, bool) {
	switch candidate := priority(raw); candidate {
	case priorityLow, priorityHigh:
		return candidate, true
	}
	return 0, false
}

type address struct {
	City string
	Zip  *string
}

func (a *address) Populate(v Value) {
	Parse(&a.City, v.Key("city"))
	ParseOptional(&a.Zip, v.Key("zip"))
}

type user struct {
	ID       int
	Name     string
	Score    float64
	Active   bool
	Nickname *string
	Role     role
	Priority *priority
	Address  address
	Work     *address
	Tags     []string
	Friends  []user
	Roles    []role
	Created  time.Time
	Homepage *url.URL
	Limits   map[string]int
}

func (u *user) Populate(v Value) {
	Parse(&u.ID, v.Key("id"))
	Parse(&u.Name, v.Key("name"))
	Parse(&u.Score, v.Key("score"))
	Parse(&u.Active, v.Key("active"))
	ParseOptional(&u.Nickname, v.Key("nickname"))
	ParseEnum[string](&u.Role, v.Key("role"))
	ParseOptionalEnum[int](&u.Priority, v.Key("priority"))
	ParseModel(&u.Address, v.Key("address"))
	ParseOptionalModel(&u.Work, v.Key("work"))
	ParseSlice(&u.Tags, v.Key("tags"))
	ParseModelSlice(&u.Friends, v.Key("friends"))
	ParseEnumSlice[string](&u.Roles, v.Key("roles"))
	ParseDate(&u.Created, v.Key("created").WithDateFormat("yyyy-MM-dd"))
	ParseOptionalURL(&u.Homepage, v.Key("homepage"))
	ParseMap(&u.Limits, v.Key("limits"))
}

type settings struct {
	Theme string
	Size  int
}

func (s *settings) Init() {
	s.Theme = "dark"
	s.Size = 12
}

func (s *settings) Populate(v Value) {
	Parse(&s.Theme, v.Key("theme"))
	Parse(&s.Size, v.Key("size"))
}

func userNode() map[string]interface{} {
	return map[string]interface{}{
		"id":       "7",
		"name":     "Ann",
		"score":    9.5,
		"active":   true,
		"nickname": "annie",
		"role":     "admin",
		"priority": "2",
		"address":  map[string]interface{}{"city": "Prague", "zip": "11000"},
		"work":     map[string]interface{}{"city": "Brno"},
		"tags":     []interface{}{"a", "b"},
		"friends": []interface{}{
			map[string]interface{}{"id": 8.0, "name": "Bob"},
			"not a friend",
			map[string]interface{}{"id": 9.0, "name": "Cid"},
		},
		"roles":    []interface{}{"guest", "root", "admin"},
		"created":  "2024-02-29",
		"homepage": "https://example.com/ann page",
		"limits":   map[string]interface{}{"daily": 10.0, "monthly": "300"},
	}
}

func TestUnmarshal(t *testing.T) {
	actual := &user{}
	Unmarshal(userNode(), actual)

	zip := "11000"
	nickname := "annie"
	high := priorityHigh
	assert.Equal(t, 7, actual.ID)
	assert.Equal(t, "Ann", actual.Name)
	assert.Equal(t, 9.5, actual.Score)
	assert.True(t, actual.Active)
	assert.Equal(t, &nickname, actual.Nickname)
	assert.Equal(t, roleAdmin, actual.Role)
	assert.Equal(t, &high, actual.Priority)
	assert.Equal(t, address{City: "Prague", Zip: &zip}, actual.Address)
	require.NotNil(t, actual.Work)
	assert.Equal(t, address{City: "Brno"}, *actual.Work)
	assert.Equal(t, []string{"a", "b"}, actual.Tags)
	require.Len(t, actual.Friends, 2)
	assert.Equal(t, 8, actual.Friends[0].ID)
	assert.Equal(t, "Cid", actual.Friends[1].Name)
	assert.Equal(t, []role{roleGuest, roleAdmin}, actual.Roles)
	assert.True(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC).Equal(actual.Created))
	require.NotNil(t, actual.Homepage)
	assert.Equal(t, "https://example.com/ann%20page", actual.Homepage.String())
	assert.Equal(t, map[string]int{"daily": 10, "monthly": 300}, actual.Limits)
}

func TestUnmarshal_Idempotent(t *testing.T) {
	node := userNode()
	first := &user{}
	Unmarshal(node, first)
	second := &user{}
	Unmarshal(node, second)
	Unmarshal(node, second)
	assert.Equal(t, first, second)
}

func TestParseModel(t *testing.T) {
	var testCases = []struct {
		description string
		node        interface{}
		initial     address
		expect      address
	}{
		{
			description: "missing fields keep defaults",
			node:        map[string]interface{}{"zip": 11000.0},
			expect:      address{},
		},
		{
			description: "object replaces prior value",
			node:        map[string]interface{}{"city": "Oslo"},
			initial:     address{City: "Rome"},
			expect:      address{City: "Oslo"},
		},
		{
			description: "string node leaves prior value",
			node:        "Oslo",
			initial:     address{City: "Rome"},
			expect:      address{City: "Rome"},
		},
		{
			description: "number node leaves prior value",
			node:        12.0,
			initial:     address{City: "Rome"},
			expect:      address{City: "Rome"},
		},
		{
			description: "array node leaves prior value",
			node:        []interface{}{map[string]interface{}{"city": "Oslo"}},
			initial:     address{City: "Rome"},
			expect:      address{City: "Rome"},
		},
		{
			description: "null node leaves prior value",
			node:        nil,
			initial:     address{City: "Rome"},
			expect:      address{City: "Rome"},
		},
	}

	for _, testCase := range testCases {
		actual := testCase.initial
		ParseModel(&actual, NewValue(testCase.node))
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestParseOptionalModel(t *testing.T) {
	var actual *address
	ParseOptionalModel(&actual, Absent())
	assert.Nil(t, actual)

	ParseOptionalModel(&actual, NewValue(map[string]interface{}{"city": "Oslo"}))
	require.NotNil(t, actual)
	assert.Equal(t, "Oslo", actual.City)

	prior := actual
	ParseOptionalModel(&actual, NewValue([]interface{}{}))
	assert.Same(t, prior, actual)
}

func TestParseModel_Initializer(t *testing.T) {
	var actual settings
	ParseModel(&actual, NewValue(map[string]interface{}{"size": "14"}))
	assert.Equal(t, settings{Theme: "dark", Size: 14}, actual)

	assert.Equal(t, settings{Theme: "dark", Size: 12}, NewModel[settings]())
}

func TestParseModel_ConfigPropagates(t *testing.T) {
	config := NewConfig(WithReferenceDate(true))
	var actual eventModel
	ParseModel(&actual, config.Value(map[string]interface{}{"at": 0.0}))
	assert.True(t, actual.At.Equal(time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)))
}

type eventModel struct {
	At time.Time
}

func (e *eventModel) Populate(v Value) {
	ParseDate(&e.At, v.Key("at"))
}
