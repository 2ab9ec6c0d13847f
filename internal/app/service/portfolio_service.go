package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akshayrj/portfolio-backend/internal/app/model"
)

// PortfolioSnapshot is the aggregated public portfolio content, built
// once and reused by the chatbot for prompt context.
type PortfolioSnapshot struct {
	PersonalInfo   *model.PersonalInfo
	Projects       []model.Project
	Skills         []model.Skill
	Educations     []model.Education
	Experiences    []model.Experience
	Certifications []model.Certification
	SocialLinks    []model.SocialLink
}

// PortfolioService assembles the full portfolio from each content
// service in one pass.
type PortfolioService interface {
	Snapshot() (*PortfolioSnapshot, error)
}

type portfolioService struct {
	personalInfo   PersonalInfoService
	projects       ProjectService
	skills         SkillService
	educations     EducationService
	experiences    ExperienceService
	certifications CertificationService
	socialLinks    SocialLinkService
}

func NewPortfolioService(
	personalInfo PersonalInfoService,
	projects ProjectService,
	skills SkillService,
	educations EducationService,
	experiences ExperienceService,
	certifications CertificationService,
	socialLinks SocialLinkService,
) PortfolioService {
	return &portfolioService{
		personalInfo:   personalInfo,
		projects:       projects,
		skills:         skills,
		educations:     educations,
		experiences:    experiences,
		certifications: certifications,
		socialLinks:    socialLinks,
	}
}

// Snapshot loads every content section. A missing profile row is not
// an error; any other failure aborts the build.
func (s *portfolioService) Snapshot() (*PortfolioSnapshot, error) {
	snapshot := &PortfolioSnapshot{}

	info, err := s.personalInfo.Get()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	snapshot.PersonalInfo = info

	if snapshot.Projects, err = s.projects.List(); err != nil {
		return nil, err
	}
	if snapshot.Skills, err = s.skills.List(); err != nil {
		return nil, err
	}
	if snapshot.Educations, err = s.educations.List(); err != nil {
		return nil, err
	}
	if snapshot.Experiences, err = s.experiences.List(); err != nil {
		return nil, err
	}
	if snapshot.Certifications, err = s.certifications.List(); err != nil {
		return nil, err
	}
	if snapshot.SocialLinks, err = s.socialLinks.ListActive(); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// PromptContext renders the snapshot as plain text for the chatbot
// prompt.
func (p *PortfolioSnapshot) PromptContext() string {
	var b strings.Builder

	if p.PersonalInfo != nil {
		fmt.Fprintf(&b, "About: %s, %s. %s\n", p.PersonalInfo.FullName, p.PersonalInfo.Title, p.PersonalInfo.Bio)
		if p.PersonalInfo.Location != "" {
			fmt.Fprintf(&b, "Location: %s\n", p.PersonalInfo.Location)
		}
		fmt.Fprintf(&b, "Contact: %s\n", p.PersonalInfo.Email)
	}

	if len(p.Skills) > 0 {
		b.WriteString("\nSkills:\n")
		for _, skill := range p.Skills {
			fmt.Fprintf(&b, "- %s (%s", skill.Name, skill.Level)
			if skill.Category != "" {
				fmt.Fprintf(&b, ", %s", skill.Category)
			}
			b.WriteString(")\n")
		}
	}

	if len(p.Projects) > 0 {
		b.WriteString("\nProjects:\n")
		for _, project := range p.Projects {
			fmt.Fprintf(&b, "- %s: %s", project.Title, project.Description)
			if stack := project.TechStackList(); len(stack) > 0 {
				fmt.Fprintf(&b, " (built with %s)", strings.Join(stack, ", "))
			}
			b.WriteString("\n")
		}
	}

	if len(p.Experiences) > 0 {
		b.WriteString("\nExperience:\n")
		for _, exp := range p.Experiences {
			fmt.Fprintf(&b, "- %s at %s", exp.Title, exp.Company)
			if exp.CurrentlyWorking {
				b.WriteString(" (current)")
			}
			b.WriteString("\n")
			for _, line := range exp.DescriptionList() {
				fmt.Fprintf(&b, "  * %s\n", line)
			}
		}
	}

	if len(p.Educations) > 0 {
		b.WriteString("\nEducation:\n")
		for _, edu := range p.Educations {
			fmt.Fprintf(&b, "- %s, %s", edu.Degree, edu.Institution)
			if edu.FieldOfStudy != "" {
				fmt.Fprintf(&b, " (%s)", edu.FieldOfStudy)
			}
			b.WriteString("\n")
		}
	}

	if len(p.Certifications) > 0 {
		b.WriteString("\nCertifications:\n")
		for _, cert := range p.Certifications {
			fmt.Fprintf(&b, "- %s from %s\n", cert.Name, cert.IssuingOrganization)
		}
	}

	if len(p.SocialLinks) > 0 {
		b.WriteString("\nLinks:\n")
		for _, link := range p.SocialLinks {
			fmt.Fprintf(&b, "- %s: %s\n", link.Platform, link.URL)
		}
	}

	return b.String()
}
