package config

import (
	"strconv"

	"github.com/AlecAivazis/survey/v2"
)

// WizardAnswers holds the values gathered by RunSetupWizard, ready to
// be applied to a Store with ApplyWizardAnswers.
type WizardAnswers struct {
	TeamNumber int    `survey:"team_number"`
	Alliance   string `survey:"alliance"`
	Position   string `survey:"position"`
	Mode       string `survey:"mode"`
}

// RunSetupWizard runs an interactive first-run configuration flow for
// the handful of fields an operator needs to set before driving a
// robot: team number, alliance, position, and initial control mode.
// It is the Driver Station's counterpart to the teacher's FMS roster
// wizard, trimmed to what a single DS instance actually needs.
func RunSetupWizard() (WizardAnswers, error) {
	a := WizardAnswers{}

	prompts := []*survey.Question{
		{
			Name:     "team_number",
			Validate: survey.Required,
			Prompt: &survey.Input{
				Message: "Team number",
			},
		},
		{
			Name: "alliance",
			Prompt: &survey.Select{
				Message: "Alliance",
				Options: []string{"RED", "BLUE"},
				Default: "RED",
			},
		},
		{
			Name: "position",
			Prompt: &survey.Select{
				Message: "Station position",
				Options: []string{"1", "2", "3"},
				Default: "1",
			},
		},
		{
			Name: "mode",
			Prompt: &survey.Select{
				Message: "Initial control mode",
				Options: []string{"TELEOPERATED", "AUTONOMOUS", "TEST"},
				Default: "TELEOPERATED",
			},
		},
	}

	if err := survey.Ask(prompts, &a); err != nil {
		return a, err
	}
	return a, nil
}

// ApplyWizardAnswers writes the gathered answers into a Store.
func ApplyWizardAnswers(s *Store, a WizardAnswers) {
	s.SetTeamNumber(uint16(a.TeamNumber))

	if a.Alliance == "BLUE" {
		s.SetAlliance(AllianceBlue)
	} else {
		s.SetAlliance(AllianceRed)
	}

	switch a.Position {
	case "2":
		s.SetPosition(Position2)
	case "3":
		s.SetPosition(Position3)
	default:
		s.SetPosition(Position1)
	}

	switch a.Mode {
	case "AUTONOMOUS":
		s.SetControlMode(ControlAutonomous)
	case "TEST":
		s.SetControlMode(ControlTest)
	default:
		s.SetControlMode(ControlTeleoperated)
	}
}

// ParseTeamNumber validates and converts a team-number string, used by
// CLI flags that accept it as free text.
func ParseTeamNumber(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, err
	}
	return uint16(n), nil
}
