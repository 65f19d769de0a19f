package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/category"
	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/currency"
	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/goal"
	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/status"
	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/transaction"
	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/transfer"
	"github.com/BojanNestorovic/WalletApp/internal/handlers/v1/wallet"
	"github.com/BojanNestorovic/WalletApp/internal/logging"
	"github.com/BojanNestorovic/WalletApp/internal/operator"
	"github.com/BojanNestorovic/WalletApp/internal/service"
)

const apiVersion = "1.0.0"

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator

	server *http.Server
}

// Serve builds the routes and blocks serving them until Shutdown.
func (r *Rest) Serve() error {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(apiVersion)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("WalletApp", apiVersion))
	humaAPI.UseMiddleware(r.logDataMiddleware())

	wallet.NewCreateWalletHandler(r.Operator).Register(humaAPI)
	wallet.NewGetWalletHandler(r.Service.Wallet).Register(humaAPI)
	wallet.NewListWalletsHandler(r.Service.Wallet).Register(humaAPI)
	wallet.NewUpdateWalletHandler(r.Operator).Register(humaAPI)
	wallet.NewArchiveWalletHandler(r.Operator).Register(humaAPI)
	wallet.NewDeleteWalletHandler(r.Operator).Register(humaAPI)

	transaction.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Service.Transaction, r.Operator).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction, r.Operator).Register(humaAPI)

	transfer.NewTransferHandler(r.Operator).Register(humaAPI)

	goal.NewCreateGoalHandler(r.Operator).Register(humaAPI)
	goal.NewListGoalsHandler(r.Service.Goal).Register(humaAPI)
	goal.NewGetGoalHandler(r.Service.Goal).Register(humaAPI)
	goal.NewUpdateGoalHandler(r.Operator).Register(humaAPI)
	goal.NewDeleteGoalHandler(r.Operator).Register(humaAPI)
	goal.NewSyncGoalHandler(r.Service.Goal, r.Operator).Register(humaAPI)

	currency.NewListCurrenciesHandler(r.Service.Currency).Register(humaAPI)
	currency.NewGetCurrencyHandler(r.Service.Currency).Register(humaAPI)
	currency.NewCreateCurrencyHandler(r.Operator).Register(humaAPI)
	currency.NewUpdateCurrencyHandler(r.Operator).Register(humaAPI)
	currency.NewDeleteCurrencyHandler(r.Operator).Register(humaAPI)

	category.NewListCategoriesHandler(r.Service.Category).Register(humaAPI)
	category.NewGetCategoryHandler(r.Service.Category).Register(humaAPI)

	r.server = &http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := r.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (r *Rest) Shutdown(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	return r.server.Shutdown(ctx)
}

// logDataMiddleware gives every operation a LogData and emits one structured
// entry per request.
func (r *Rest) logDataMiddleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := logging.NewLogData(r.Logger)
		stopTimer := logData.AddTiming("durationMs")

		next(huma.WithContext(ctx, logging.NewContext(ctx.Context(), logData)))

		stopTimer()
		logData.AddData("path", ctx.URL().Path)
		logData.Log().Infof("Handler.%v.Complete", ctx.Operation().OperationID)
	}
}
