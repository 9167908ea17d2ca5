package config

import "testing"

func TestApplyWizardAnswers(t *testing.T) {
	s := New()
	ApplyWizardAnswers(s, WizardAnswers{
		TeamNumber: 254,
		Alliance:   "BLUE",
		Position:   "3",
		Mode:       "AUTONOMOUS",
	})

	if s.TeamNumber() != 254 {
		t.Fatalf("expected team 254, got %d", s.TeamNumber())
	}
	if s.Alliance() != AllianceBlue {
		t.Fatalf("expected blue alliance, got %v", s.Alliance())
	}
	if s.Position() != Position3 {
		t.Fatalf("expected position 3, got %v", s.Position())
	}
	if s.ControlMode() != ControlAutonomous {
		t.Fatalf("expected autonomous mode, got %v", s.ControlMode())
	}
}

func TestApplyWizardAnswersDefaults(t *testing.T) {
	s := New()
	ApplyWizardAnswers(s, WizardAnswers{TeamNumber: 1, Alliance: "", Position: "", Mode: ""})

	if s.Alliance() != AllianceRed {
		t.Fatalf("expected default red alliance, got %v", s.Alliance())
	}
	if s.Position() != Position1 {
		t.Fatalf("expected default position 1, got %v", s.Position())
	}
	if s.ControlMode() != ControlTeleoperated {
		t.Fatalf("expected default teleoperated mode, got %v", s.ControlMode())
	}
}

func TestParseTeamNumber(t *testing.T) {
	n, err := ParseTeamNumber("254")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 254 {
		t.Fatalf("expected 254, got %d", n)
	}

	if _, err := ParseTeamNumber("not-a-number"); err == nil {
		t.Fatal("expected an error for a non-numeric team number")
	}

	if _, err := ParseTeamNumber("99999"); err == nil {
		t.Fatal("expected an error for a team number overflowing uint16")
	}
}
