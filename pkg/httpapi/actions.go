package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/FRC-Utilities/LibDS-Legacy/pkg/config"
	"github.com/FRC-Utilities/LibDS-Legacy/pkg/protocol"
)

func (s *Server) requireController(w http.ResponseWriter) bool {
	if s.ds == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return false
	}
	return true
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	if !s.requireController(w) {
		return
	}
	json.NewEncoder(w).Encode(s.ds.Snapshot())
}

func (s *Server) setTeamNumber(w http.ResponseWriter, r *http.Request) {
	if !s.requireController(w) {
		return
	}

	var body struct{ Team uint16 }
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	s.ds.SetTeamNumber(body.Team)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) setAlliance(w http.ResponseWriter, r *http.Request) {
	if !s.requireController(w) {
		return
	}

	var body struct{ Alliance int }
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	s.ds.SetAlliance(config.Alliance(body.Alliance))
	w.WriteHeader(http.StatusOK)
}

func (s *Server) setPosition(w http.ResponseWriter, r *http.Request) {
	if !s.requireController(w) {
		return
	}

	var body struct{ Position int }
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	s.ds.SetPosition(config.Position(body.Position))
	w.WriteHeader(http.StatusOK)
}

func (s *Server) setMode(w http.ResponseWriter, r *http.Request) {
	if !s.requireController(w) {
		return
	}

	var body struct{ Mode int }
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	s.ds.SetControlMode(config.ControlMode(body.Mode))
	w.WriteHeader(http.StatusOK)
}

func (s *Server) setEnabled(w http.ResponseWriter, r *http.Request) {
	if !s.requireController(w) {
		return
	}

	var body struct{ Enabled bool }
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	s.ds.SetEnabled(body.Enabled)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) postEStop(w http.ResponseWriter, r *http.Request) {
	if !s.requireController(w) {
		return
	}
	s.ds.EmergencyStop()
	w.WriteHeader(http.StatusOK)
}

func (s *Server) postEStopClear(w http.ResponseWriter, r *http.Request) {
	if !s.requireController(w) {
		return
	}
	s.ds.ClearEmergencyStop()
	w.WriteHeader(http.StatusOK)
}

func (s *Server) postReboot(w http.ResponseWriter, r *http.Request) {
	if !s.requireController(w) {
		return
	}
	s.ds.RequestReboot()
	w.WriteHeader(http.StatusOK)
}

func (s *Server) postRestartCode(w http.ResponseWriter, r *http.Request) {
	if !s.requireController(w) {
		return
	}
	s.ds.RequestRestartCode()
	w.WriteHeader(http.StatusOK)
}

func (s *Server) postProtocol(w http.ResponseWriter, r *http.Request) {
	if !s.requireController(w) {
		return
	}

	var body struct{ Era int }
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.ds.SetProtocol(protocol.Era(body.Era)); err != nil {
		s.l.Warn("Error swapping protocol", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusOK)
}
