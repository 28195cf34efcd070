package chart

import "storepulse/internal/model"

// Key is a finite tag over the eleven chart identifiers the dashboard can
// render. Dispatching on the tag (rather than open-ended string lookup)
// makes adding a twelfth question a compile-time-checked change.
type Key int

const (
	KeyUnknown Key = iota
	KeyAgeGroups
	KeyZones
	KeyVisitReason
	KeyFrequency
	KeyPreferredDepartment
	KeyCompetitors
	KeySatisfaction
	KeyNameChangeAwareness
	KeyDiscoveryChannel
	KeyImprovementAreas
	KeyExperienceChanges
)

var keyNames = map[Key]model.SeriesKey{
	KeyAgeGroups:           model.KeyAgeGroups,
	KeyZones:               model.KeyZones,
	KeyVisitReason:         model.KeyVisitReason,
	KeyFrequency:           model.KeyFrequency,
	KeyPreferredDepartment: model.KeyPreferredDepartment,
	KeyCompetitors:         model.KeyCompetitors,
	KeySatisfaction:        model.KeySatisfaction,
	KeyNameChangeAwareness: model.KeyNameChangeAwareness,
	KeyDiscoveryChannel:    model.KeyDiscoveryChannel,
	KeyImprovementAreas:    model.KeyImprovementAreas,
	KeyExperienceChanges:   model.KeyExperienceChanges,
}

// ParseKey maps a marker identifier to its tag. Unknown identifiers map to
// KeyUnknown; callers render nothing for those.
func ParseKey(identifier string) Key {
	for k, name := range keyNames {
		if string(name) == identifier {
			return k
		}
	}
	return KeyUnknown
}

// SeriesKey returns the dataset series key backing the chart. Empty for
// KeyUnknown.
func (k Key) SeriesKey() model.SeriesKey {
	return keyNames[k]
}

func (k Key) String() string {
	return string(keyNames[k])
}
