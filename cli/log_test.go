package cli

import "testing"

func TestLogConfig_Scan(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			name: "level_separate_value",
			args: []string{"parse", "--log-level", "debug", "x.stn"},
			want: logConfig{Level: "debug", Pretty: true},
		},
		{
			name: "format_assigned",
			args: []string{"--log-format=json"},
			want: logConfig{Format: "json", Pretty: true},
		},
		{
			name: "negated_pretty",
			args: []string{"--no-log-pretty"},
			want: logConfig{},
		},
		{
			name: "caller_assigned",
			args: []string{"--log-caller=true"},
			want: logConfig{Caller: true, Pretty: true},
		},
		{
			name: "negated_assigned_false",
			args: []string{"--no-log-caller=false"},
			want: logConfig{Caller: true, Pretty: true},
		},
		{
			name: "stops_at_terminator",
			args: []string{"--", "--log-level=trace"},
			want: logConfig{Pretty: true},
		},
		{
			name: "unrelated_flags",
			args: []string{"--shared", "-I", "dir"},
			want: logConfig{Pretty: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logConfig{Pretty: true}
			got.scan(tt.args)

			if got != tt.want {
				t.Errorf("scan(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}
