package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "booklend/internal/adapter/http"
	appmw "booklend/internal/adapter/middleware"
	"booklend/internal/adapter/repository/mysql"
	"booklend/internal/config"
	"booklend/internal/infrastructure/cache"
	"booklend/internal/infrastructure/db"
	"booklend/internal/session"
	"booklend/internal/usecase/auth"
	"booklend/internal/usecase/catalog"
	"booklend/internal/usecase/lending"
	"booklend/internal/usecase/orders"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	accountRepo := mysql.NewAccountRepository(gdb)
	bookRepo := mysql.NewBookRepository(gdb)
	orderRepo := mysql.NewOrderRepository(gdb)
	uow := mysql.NewGormUoW(gdb)
	sessions := session.NewStore(rdb, cfg.SessionTTL)

	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(auth.NewUsecase(accountRepo, cfg.AdminAuthorityCode), sessions)
	catalogH := httpadp.NewCatalogHandler(catalog.NewUsecase(bookRepo))
	lendingH := httpadp.NewLendingHandler(lending.NewUsecase(uow))
	orderH := httpadp.NewOrderHandler(orders.NewUsecase(orderRepo))

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// routes
	e.GET("/health", h.Health)
	e.POST("/auth/sign-up", authH.SignUp)
	e.POST("/auth/sign-in", authH.SignIn)

	withSession := appmw.Session(sessions)
	e.POST("/auth/sign-out", authH.SignOut, withSession)
	e.POST("/auth/password", authH.ChangePassword, withSession)
	e.GET("/books", catalogH.ListBooks, withSession)
	e.POST("/orders", lendingH.Borrow, withSession)
	e.POST("/orders/:order_id/return", lendingH.Close, withSession)
	e.GET("/orders", orderH.ListAll, withSession)
	e.GET("/orders/mine", orderH.ListMine, withSession)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
