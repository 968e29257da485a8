package components

import (
	"partner-portal/internal/domain/earnings"
	"partner-portal/internal/pkg/clock"
	"partner-portal/internal/pkg/config"
	"partner-portal/internal/usecase"
	"partner-portal/internal/usecase/commands"
	"partner-portal/internal/usecase/queries"
	"partner-portal/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewTxManager,
	newCalculator,
)

func newCalculator(cfg config.Config) (*earnings.Calculator, error) {
	rate, err := cfg.Payout.CommissionRateDecimal()
	if err != nil {
		return nil, err
	}
	return earnings.NewCalculator(earnings.Policy{
		CommissionRate:  rate,
		ClearanceWindow: cfg.Payout.ClearanceWindow,
	})
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		newWithdrawalCommands,
	),
)

func newWithdrawalCommands(
	cfg config.Config,
	users queries.UserReadStore,
	partners queries.PartnerReadStore,
	events queries.EventReadStore,
	payoutReads queries.PayoutReadStore,
	earningsQueries queries.EarningsQueries,
	challengeRepo commands.ChallengeRepository,
	payoutRepo commands.PayoutRepository,
	auditRepo commands.AuditRepository,
	mailer commands.Mailer,
	tx shared.TxManager,
	clk clock.Clock,
) commands.WithdrawalCommands {
	return commands.NewWithdrawalCommands(
		users, partners, events, payoutReads, earningsQueries,
		challengeRepo, payoutRepo, auditRepo, mailer,
		tx, clk, cfg.Payout.OTPTTL,
	)
}

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewEarningsQueries,
		queries.NewPayoutQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
