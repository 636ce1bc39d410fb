// Package seed holds the demo job corpus. The portal ships with these six
// postings; anything created at runtime is appended in memory only.
package seed

import (
	"time"

	"esportconnect/internal/domain"

	"github.com/google/uuid"
)

// RecruiterID is the seeded recruiter identity owning every demo posting.
// It matches the row inserted by the identity seed migration.
var RecruiterID = uuid.MustParse("0d9e4c7a-2b5f-4d8e-8c3a-1f6b9d2e5a7c")

// PlayerID is the seeded player identity (ProGamer123).
var PlayerID = uuid.MustParse("f3b8e2d4-6c1a-4e0f-9a2b-7d5c8e1f0a3b")

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Jobs returns a fresh copy of the demo corpus, in corpus order.
func Jobs() []domain.JobPosting {
	return []domain.JobPosting{
		{
			ID:          uuid.MustParse("5a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"),
			Title:       "Professional League of Legends ADC",
			Description: "We are looking for a skilled ADC player to join our competitive League of Legends team. Must have experience in ranked play and tournament participation.",
			Requirements: []string{
				"Diamond+ rank",
				"2+ years competitive experience",
				"Team player mentality",
				"Available for practice 6 days/week",
			},
			Company:     "Team Liquid",
			Location:    "Los Angeles, CA",
			Kind:        domain.KindFullTime,
			Salary:      domain.Salary{Min: 80000, Max: 150000, Currency: "USD"},
			Games:       []string{"League of Legends"},
			Positions:   []string{"ADC", "Bot Lane"},
			Experience:  domain.ExperienceProfessional,
			CreatedAt:   date(2024, time.January, 15),
			Deadline:    date(2024, time.February, 15),
			RecruiterID: RecruiterID,
			Status:      domain.StatusOpen,
		},
		{
			ID:          uuid.MustParse("6b2c3d4e-5f6a-4b7c-9d8e-0f1a2b3c4d5e"),
			Title:       "Valorant IGL & Support Coach",
			Description: "Seeking an experienced in-game leader and support coach for our Valorant competitive team. Leadership skills and strategic thinking required.",
			Requirements: []string{
				"Immortal+ rank",
				"IGL experience",
				"Coaching background preferred",
				"Strong communication skills",
			},
			Company:     "Cloud9",
			Location:    "Remote",
			Kind:        domain.KindContract,
			Salary:      domain.Salary{Min: 60000, Max: 100000, Currency: "USD"},
			Games:       []string{"Valorant"},
			Positions:   []string{"IGL", "Support", "Coach"},
			Experience:  domain.ExperienceAdvanced,
			CreatedAt:   date(2024, time.January, 12),
			Deadline:    date(2024, time.February, 10),
			RecruiterID: RecruiterID,
			Status:      domain.StatusOpen,
		},
		{
			ID:          uuid.MustParse("7c3d4e5f-6a7b-4c8d-8e9f-1a2b3c4d5e6f"),
			Title:       "CS2 AWPer - Tournament Team",
			Description: "Professional CS2 team looking for a dedicated AWPer for upcoming tournament season. Must be available for bootcamps and international travel.",
			Requirements: []string{
				"Global Elite rank",
				"Professional AWP experience",
				"Tournament participation",
				"Passport for international travel",
			},
			Company:     "FaZe Clan",
			Location:    "Atlanta, GA",
			Kind:        domain.KindFullTime,
			Salary:      domain.Salary{Min: 100000, Max: 200000, Currency: "USD"},
			Games:       []string{"Counter-Strike 2"},
			Positions:   []string{"AWPer", "Sniper"},
			Experience:  domain.ExperienceProfessional,
			CreatedAt:   date(2024, time.January, 10),
			Deadline:    date(2024, time.February, 5),
			RecruiterID: RecruiterID,
			Status:      domain.StatusOpen,
		},
		{
			ID:          uuid.MustParse("8d4e5f6a-7b8c-4d9e-9f0a-2b3c4d5e6f7a"),
			Title:       "Fortnite Content Creator & Competitor",
			Description: "Looking for a skilled Fortnite player who can compete in tournaments while creating engaging content for our social media channels.",
			Requirements: []string{
				"Champion League experience",
				"Content creation skills",
				"Social media presence",
				"Streaming experience",
			},
			Company:     "100 Thieves",
			Location:    "Los Angeles, CA",
			Kind:        domain.KindPartTime,
			Salary:      domain.Salary{Min: 40000, Max: 80000, Currency: "USD"},
			Games:       []string{"Fortnite"},
			Positions:   []string{"Content Creator", "Competitor"},
			Experience:  domain.ExperienceAdvanced,
			CreatedAt:   date(2024, time.January, 8),
			Deadline:    date(2024, time.February, 1),
			RecruiterID: RecruiterID,
			Status:      domain.StatusOpen,
		},
		{
			ID:          uuid.MustParse("9e5f6a7b-8c9d-4eaf-8a1b-3c4d5e6f7a8b"),
			Title:       "Rocket League Doubles Partner",
			Description: "Semi-professional Rocket League player seeking a doubles partner for RLCS qualifiers and regional tournaments.",
			Requirements: []string{
				"Grand Champion rank",
				"Tournament experience",
				"Good chemistry",
				"Consistent practice schedule",
			},
			Company:     "NRG Esports",
			Location:    "Chicago, IL",
			Kind:        domain.KindTournament,
			Salary:      domain.Salary{Min: 20000, Max: 50000, Currency: "USD"},
			Games:       []string{"Rocket League"},
			Positions:   []string{"Doubles Partner"},
			Experience:  domain.ExperienceAdvanced,
			CreatedAt:   date(2024, time.January, 5),
			Deadline:    date(2024, time.January, 25),
			RecruiterID: RecruiterID,
			Status:      domain.StatusOpen,
		},
		{
			ID:          uuid.MustParse("af6a7b8c-9dae-4fb0-9c2d-4d5e6f7a8b9c"),
			Title:       "Apex Legends Squad Member",
			Description: "Competitive Apex Legends team looking for a third member to complete our squad for the upcoming ALGS season.",
			Requirements: []string{
				"Master+ rank",
				"Team experience",
				"Good communication",
				"Flexible role playing",
			},
			Company:     "TSM",
			Location:    "Remote",
			Kind:        domain.KindContract,
			Salary:      domain.Salary{Min: 30000, Max: 70000, Currency: "USD"},
			Games:       []string{"Apex Legends"},
			Positions:   []string{"Squad Member"},
			Experience:  domain.ExperienceAdvanced,
			CreatedAt:   date(2024, time.January, 3),
			Deadline:    date(2024, time.January, 30),
			RecruiterID: RecruiterID,
			Status:      domain.StatusOpen,
		},
	}
}
