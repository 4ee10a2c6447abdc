package database

import (
	"testing"

	"github.com/ximnasio/gym-booking/internal/config"
)

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DBConfig
		want string
	}{
		{
			name: "with password",
			cfg:  config.DBConfig{User: "gym", Pass: "pw", Host: "db", Port: "3306", Name: "gym_booking"},
			want: "gym:pw@tcp(db:3306)/gym_booking?charset=utf8mb4&parseTime=true&loc=UTC",
		},
		{
			name: "without password",
			cfg:  config.DBConfig{User: "root", Host: "localhost", Port: "3307", Name: "test"},
			want: "root@tcp(localhost:3307)/test?charset=utf8mb4&parseTime=true&loc=UTC",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DSN(tt.cfg); got != tt.want {
				t.Errorf("DSN() = %s, want %s", got, tt.want)
			}
		})
	}
}
