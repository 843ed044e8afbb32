package provider

import "github.com/MrJJimenez/jobagg/internal/network"

// Source identifiers reported on normalized records.
const (
	SourceJSearch   = "JSearch"
	SourceAdzuna    = "Adzuna"
	SourceJooble    = "Jooble"
	SourceUSAJobs   = "USAJobs"
	SourceArbeitnow = "Arbeitnow"
	SourceRemotive  = "Remotive"
	SourceWWR       = "WeWorkRemotely"
)

// Credentials holds the per-provider API secrets. Empty values disable
// the corresponding adapter rather than failing the run.
type Credentials struct {
	RapidAPIKey  string
	JoobleKey    string
	AdzunaAppID  string
	AdzunaAppKey string
	USAJobsEmail string
	USAJobsKey   string
}

// Registry groups adapters by how the engine schedules them:
// CityScoped providers run once per (location, skill) pair, CountrySafe
// providers once per run, Remote providers once per skill on remote
// searches.
type Registry struct {
	CityScoped  []Provider
	CountrySafe []Provider
	Remote      []Provider
}

func NewRegistry(client *network.Client, creds Credentials) *Registry {
	return &Registry{
		CityScoped: []Provider{
			NewJSearch(client, creds.RapidAPIKey, false),
			NewAdzuna(client, creds.AdzunaAppID, creds.AdzunaAppKey),
			NewJooble(client, creds.JoobleKey),
		},
		CountrySafe: []Provider{
			NewUSAJobs(client, creds.USAJobsEmail, creds.USAJobsKey),
			NewArbeitnow(client, false),
		},
		Remote: []Provider{
			NewJSearch(client, creds.RapidAPIKey, true),
			NewRemotive(client),
			NewWeWorkRemotely(client),
			NewArbeitnow(client, true),
		},
	}
}
