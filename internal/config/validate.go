package config

import (
	"fmt"
	"strings"
	"time"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims and dedupes list fields, then checks the parts
// the engine cannot limp along without.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Email.SubjectAny = trimList(out.Email.SubjectAny)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Scheduler.IntervalHours <= 0 {
		res.addErr("scheduler.interval_hours must be > 0")
	}
	if tz := strings.TrimSpace(out.Scheduler.Timezone); tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			res.addErr("scheduler.timezone %q is not a valid IANA zone", tz)
		}
	}

	seen := map[string]bool{}
	enabled := 0
	for i, s := range out.Sources {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			res.addErr("sources[%d].name is required", i)
			continue
		}
		if seen[name] {
			res.addWarn("source %q listed more than once", name)
		}
		seen[name] = true
		if s.Enabled {
			enabled++
		}
	}
	if enabled == 0 && !out.Email.Enabled {
		res.addWarn("no sources enabled; the scheduler will tick but ingest nothing.")
	}

	if out.Limits.RequestsPerSecond <= 0 {
		out.Limits.RequestsPerSecond = 1.0
	}
	if out.Limits.Burst <= 0 {
		out.Limits.Burst = 2
	}

	if out.Email.Enabled {
		if strings.TrimSpace(out.Email.IMAPHost) == "" {
			res.addErr("email.imap_host is required when email.enabled=true")
		}
		if out.Email.IMAPPort == 0 {
			res.addErr("email.imap_port is required when email.enabled=true")
		}
		if strings.TrimSpace(out.Email.Username) == "" {
			res.addErr("email.username is required when email.enabled=true")
		}
		if strings.TrimSpace(out.Email.Mailbox) == "" {
			res.addErr("email.mailbox is required when email.enabled=true")
		}
		if len(out.Email.SubjectAny) == 0 {
			res.addWarn("email.subject_any is empty; the mailbox source may find nothing.")
		}
	}

	return out, res
}
