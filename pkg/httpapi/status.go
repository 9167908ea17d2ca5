package httpapi

import (
	"net/http"

	"github.com/flosch/pongo2/v6"
)

var statusTemplate = pongo2.Must(pongo2.FromString(`<!DOCTYPE html>
<html>
<head><title>Driver Station</title></head>
<body>
<h1>Team {{ status.TeamNumber }} &mdash; {{ alliance }}{{ position }}</h1>
<table>
<tr><td>Mode</td><td>{{ mode }}</td></tr>
<tr><td>Enabled</td><td>{{ status.Enabled }}</td></tr>
<tr><td>Emergency Stop</td><td>{{ status.EStopped }}</td></tr>
<tr><td>Robot Voltage</td><td>{{ status.RobotVoltage }}</td></tr>
<tr><td>Robot Code</td><td>{{ status.RobotHasCode }}</td></tr>
<tr><td>FMS Comms</td><td>{{ status.FMSComms }}</td></tr>
<tr><td>Radio Comms</td><td>{{ status.RadioComms }}</td></tr>
<tr><td>Robot Comms</td><td>{{ status.RobotComms }}</td></tr>
<tr><td>Protocol Era</td><td>{{ status.ProtocolEra }}</td></tr>
</table>
</body>
</html>
`))

func (s *Server) statusPage(w http.ResponseWriter, r *http.Request) {
	if !s.requireController(w) {
		return
	}

	snap := s.ds.Snapshot()
	ctx := pongo2.Context{
		"status":   snap,
		"alliance": snap.Alliance.String(),
		"position": snap.Position.String(),
		"mode":     snap.Mode.String(),
	}

	if err := statusTemplate.ExecuteWriter(ctx, w); err != nil {
		s.l.Warn("Error rendering status page", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}
