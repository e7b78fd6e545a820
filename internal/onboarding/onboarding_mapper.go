package onboarding

import (
	"time"

	"talentflow/internal/profile"
)

const dateLayout = "2006-01-02"

// DraftFromProfile seeds a new draft with what the profile already knows.
func DraftFromProfile(p profile.Profile) Draft {
	d := Draft{
		FullName:              p.FullName,
		Phone:                 p.Phone,
		Position:              p.Position,
		Level:                 p.Level,
		Formation:             p.Formation,
		Bio:                   p.Bio,
		HardSkills:            append([]string{}, p.HardSkills...),
		SoftSkills:            append([]string{}, p.SoftSkills...),
		EmergencyContactName:  p.EmergencyContactName,
		EmergencyContactPhone: p.EmergencyContactPhone,
		ShareEmergencyContact: p.EmergencyContactName != "",
		CareerObjectives:      p.CareerObjectives,
	}
	if p.BirthDate != nil {
		d.BirthDate = p.BirthDate.Format(dateLayout)
	}
	return d
}

// applyDraft folds a validated draft into the permanent profile.
func applyDraft(p *profile.Profile, d Draft, now time.Time) {
	p.FullName = d.FullName
	p.Phone = d.Phone
	p.Position = d.Position
	p.Level = d.Level
	p.Formation = d.Formation
	p.Bio = d.Bio
	p.HardSkills = d.HardSkills
	p.SoftSkills = d.SoftSkills
	p.CareerObjectives = d.CareerObjectives

	if birth, err := time.Parse(dateLayout, d.BirthDate); err == nil {
		p.BirthDate = &birth
	}
	if d.ShareEmergencyContact {
		p.EmergencyContactName = d.EmergencyContactName
		p.EmergencyContactPhone = d.EmergencyContactPhone
	} else {
		p.EmergencyContactName = ""
		p.EmergencyContactPhone = ""
	}

	p.IsOnboarded = true
	p.OnboardedAt = &now
}
