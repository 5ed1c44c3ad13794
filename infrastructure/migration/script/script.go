package main

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/brand-insights-api/internal/config"
	"github.com/vfg2006/brand-insights-api/internal/domain"
)

// Cada passo é idempotente; o script pode rodar a cada deploy.
var schema = []struct {
	name string
	ddl  string
}{
	{
		name: "dash_members",
		ddl: `CREATE TABLE IF NOT EXISTS dash_members (
			id            TEXT PRIMARY KEY,
			login_id      TEXT NOT NULL,
			name          TEXT NOT NULL DEFAULT '',
			role          TEXT NOT NULL DEFAULT 'member',
			status        TEXT NOT NULL DEFAULT 'ACTIVE',
			last_login_at TIMESTAMPTZ,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "dash_members_login_id_idx",
		ddl:  `CREATE UNIQUE INDEX IF NOT EXISTS dash_members_login_id_idx ON dash_members (login_id)`,
	},
	{
		name: "raw_ad_insights",
		ddl: `CREATE TABLE IF NOT EXISTS raw_ad_insights (
			dash_member_id        TEXT NOT NULL REFERENCES dash_members (id) ON DELETE CASCADE,
			campaign_id           TEXT NOT NULL,
			campaign_name         TEXT NOT NULL DEFAULT '',
			adset_id              TEXT NOT NULL,
			adset_name            TEXT NOT NULL DEFAULT '',
			ad_id                 TEXT NOT NULL,
			ad_name               TEXT NOT NULL DEFAULT '',
			date                  DATE NOT NULL,
			spend                 NUMERIC(18, 2) NOT NULL DEFAULT 0,
			reach                 BIGINT NOT NULL DEFAULT 0,
			clicks                BIGINT NOT NULL DEFAULT 0,
			impressions           BIGINT NOT NULL DEFAULT 0,
			results               BIGINT NOT NULL DEFAULT 0,
			revenue               NUMERIC(18, 2) NOT NULL DEFAULT 0,
			platform_status       TEXT NOT NULL DEFAULT 'ended',
			objective             TEXT NOT NULL DEFAULT '',
			thumbnail_url         TEXT NOT NULL DEFAULT '',
			creative_message      TEXT NOT NULL DEFAULT '',
			campaign_created_time TIMESTAMPTZ,
			last_synced_at        TIMESTAMPTZ,
			created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at            TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (dash_member_id, ad_id, date)
		)`,
	},
	{
		name: "raw_ad_insights_member_date_idx",
		ddl:  `CREATE INDEX IF NOT EXISTS raw_ad_insights_member_date_idx ON raw_ad_insights (dash_member_id, date)`,
	},
}

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

func applySchema(tx *sql.Tx) error {
	for _, step := range schema {
		start := time.Now()
		if _, err := tx.Exec(step.ddl); err != nil {
			logrus.WithField("step", step.name).WithError(err).Error("ERRO ao aplicar passo da migração")
			return err
		}
		logrus.WithFields(logrus.Fields{
			"step":     step.name,
			"duration": time.Since(start),
		}).Info("Passo aplicado")
	}
	return nil
}

// promoteAdmins dá o papel admin aos logins informados em MIGRATION_ADMIN_LOGIN_IDS (separados por vírgula).
// O login precisa já ter entrado ao menos uma vez.
func promoteAdmins(tx *sql.Tx, loginIDs []string) error {
	for _, loginID := range loginIDs {
		loginID = strings.TrimSpace(loginID)
		if loginID == "" {
			continue
		}

		res, err := tx.Exec(`UPDATE dash_members SET role = $1, updated_at = NOW() WHERE login_id = $2`, domain.RoleAdmin, loginID)
		if err != nil {
			return err
		}

		affected, _ := res.RowsAffected()
		if affected == 0 {
			logrus.WithField("login_id", loginID).Warn("Login ainda não cadastrado, promoção ignorada")
			continue
		}
		logrus.WithField("login_id", loginID).Info("Membro promovido a admin")
	}
	return nil
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer conn.Close()

	startTime := time.Now()

	var admins []string
	if raw := os.Getenv("MIGRATION_ADMIN_LOGIN_IDS"); raw != "" {
		admins = strings.Split(raw, ",")
	}

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := applySchema(tx); err != nil {
			return err
		}
		return promoteAdmins(tx, admins)
	})
	if err != nil {
		logrus.WithError(err).Error("Transação revertida")
		os.Exit(1)
	}

	logrus.Infof("Migração concluída em %v!", time.Since(startTime))
}
