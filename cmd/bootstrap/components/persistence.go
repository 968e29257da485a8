package components

import (
	"partner-portal/internal/infra/mailer"
	"partner-portal/internal/infra/readstore"
	"partner-portal/internal/infra/repository"
	"partner-portal/internal/pkg/config"
	"partner-portal/internal/usecase/commands"
	"partner-portal/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewPartnerReadStore,
			fx.As(new(queries.PartnerReadStore)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewPayoutReadStore,
			fx.As(new(queries.PayoutReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		repository.NewUserRepository,
		repository.NewPayoutRepository,
		repository.NewAuditRepository,
		repository.NewChallengeRepository,
		newMailer,
	),
)

func newMailer(cfg config.Config) commands.Mailer {
	return mailer.New(cfg.Mail)
}
