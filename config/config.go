package config

import (
	"flag"
	"net"
	"os"
	"regexp"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr    string
	DBPath  string
	DataDir string
	Debug   bool

	SMTP   SMTP
	Notify Notify
}

// SMTP carries delivery settings. A zero Host means mail is disabled.
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Notify configures the record-created notification hook.
// An empty Recipient makes the hook a no-op.
type Notify struct {
	Recipient string
	FormID    string
}

func ParseFlags() (cfg Config, err error) {
	var host string
	flag.StringVar(&host, "host", "0.0.0.0", "listen host name (default 0.0.0.0)")
	var port uint
	flag.UintVar(&port, "port", 8080, "listen port number (default 8080)")
	flag.StringVar(&cfg.DBPath, "db-path", "obraforms.sqlite", "path to SQLite3 DB file (default obraforms.sqlite)")
	flag.StringVar(&cfg.DataDir, "data-dir", "data", "directory for saved drafts (default data)")
	flag.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	flag.Parse()

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))

	// .env is optional; the environment only carries secrets and mail settings
	_ = godotenv.Load()

	cfg.SMTP.Host = os.Getenv("OBRA_SMTP_HOST")
	cfg.SMTP.Port = 587
	if p := os.Getenv("OBRA_SMTP_PORT"); p != "" {
		cfg.SMTP.Port, err = strconv.Atoi(p)
		if err != nil {
			return
		}
	}
	cfg.SMTP.Username = os.Getenv("OBRA_SMTP_USERNAME")
	cfg.SMTP.Password = os.Getenv("OBRA_SMTP_PASSWORD")
	cfg.SMTP.From = os.Getenv("OBRA_SMTP_FROM")

	cfg.Notify.Recipient = os.Getenv("OBRA_NOTIFY_RECIPIENT")
	cfg.Notify.FormID = os.Getenv("OBRA_NOTIFY_FORM")
	if cfg.Notify.FormID == "" {
		cfg.Notify.FormID = "mds"
	}

	return
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}
