package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/skillswap-backend/internal/models"
	"github.com/ignatzorin/skillswap-backend/internal/repository"
)

// SeedService наполняет базу демонстрационными данными для разработки.
type SeedService struct {
	users    *repository.UserRepository
	skills   *repository.SkillRepository
	profiles *repository.SkillProfileRepository
}

// NewSeedService создаёт сервис сидирования.
func NewSeedService(users *repository.UserRepository, skills *repository.SkillRepository, profiles *repository.SkillProfileRepository) *SeedService {
	return &SeedService{users: users, skills: skills, profiles: profiles}
}

type seedSkill struct {
	name        string
	description string
	category    string
}

type seedUser struct {
	username  string
	email     string
	firstName string
	lastName  string
	bio       string
	// Навыки задаются именами из каталога: (навык, уровень, want_to_learn)
	teaches map[string]string
	learns  []string
}

var seedSkills = []seedSkill{
	{"JavaScript", "Web programming language", "Programming"},
	{"Python", "General purpose programming", "Programming"},
	{"React", "Frontend library", "Web Development"},
	{"Guitar", "Musical instrument", "Music"},
	{"Spanish", "Language learning", "Languages"},
	{"Yoga", "Physical wellness", "Fitness"},
	{"Photography", "Digital photography", "Creative"},
	{"Cooking", "Culinary skills", "Lifestyle"},
}

var seedUsers = []seedUser{
	{
		username: "alice", email: "alice@example.com",
		firstName: "Alice", lastName: "Johnson", bio: "Love teaching JavaScript",
		teaches: map[string]string{"JavaScript": models.ProficiencyExpert, "React": models.ProficiencyAdvanced},
		learns:  []string{"Guitar"},
	},
	{
		username: "bob", email: "bob@example.com",
		firstName: "Bob", lastName: "Smith", bio: "Python enthusiast",
		teaches: map[string]string{"Python": models.ProficiencyAdvanced},
		learns:  []string{"JavaScript", "Spanish"},
	},
	{
		username: "carol", email: "carol@example.com",
		firstName: "Carol", lastName: "Davis", bio: "Guitar teacher",
		teaches: map[string]string{"Guitar": models.ProficiencyExpert, "Photography": models.ProficiencyIntermediate},
		learns:  []string{"Python"},
	},
}

// SeedData наполняет каталог навыков и создаёт демо-пользователей с профилями.
// Операция идемпотентна: навыки добавляются upsert-ом, существующие
// пользователи пропускаются.
func (s *SeedService) SeedData(ctx context.Context) error {
	skillIDs := make(map[string]*models.Skill, len(seedSkills))
	for _, sk := range seedSkills {
		desc := sk.description
		skill := &models.Skill{Name: sk.name, Description: &desc, Category: sk.category}
		if err := s.skills.Create(ctx, skill); err != nil {
			return fmt.Errorf("seed service: навык %s: %w", sk.name, err)
		}
		skillIDs[sk.name] = skill
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed service: хеширование пароля: %w", err)
	}

	for _, su := range seedUsers {
		if _, err := s.users.GetByEmail(ctx, su.email); err == nil {
			continue
		}

		firstName, lastName, bio := su.firstName, su.lastName, su.bio
		user := &models.User{
			Username:     su.username,
			Email:        su.email,
			PasswordHash: string(passHash),
			FirstName:    &firstName,
			LastName:     &lastName,
			Bio:          &bio,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return fmt.Errorf("seed service: пользователь %s: %w", su.username, err)
		}

		for name, level := range su.teaches {
			skill, ok := skillIDs[name]
			if !ok {
				continue
			}
			entry := &models.UserSkill{
				UserID:           user.ID,
				SkillID:          skill.ID,
				ProficiencyLevel: level,
				WantToLearn:      false,
			}
			if err := s.profiles.Upsert(ctx, entry); err != nil {
				return fmt.Errorf("seed service: teach-навык %s: %w", name, err)
			}
		}

		for _, name := range su.learns {
			skill, ok := skillIDs[name]
			if !ok {
				continue
			}
			entry := &models.UserSkill{
				UserID:           user.ID,
				SkillID:          skill.ID,
				ProficiencyLevel: models.ProficiencyBeginner,
				WantToLearn:      true,
			}
			if err := s.profiles.Upsert(ctx, entry); err != nil {
				return fmt.Errorf("seed service: learn-навык %s: %w", name, err)
			}
		}
	}

	return nil
}
