// mockbackend is a stand-in for the catalog + purchase services, for local
// development of the POS terminal. It serves a small seeded product master,
// computes purchase totals server-side and substitutes the default cashier
// code when the request carries a blank one, like the real backend does.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultCashierCode = "9999999999"

type product struct {
	Code      string `json:"product_code"`
	Name      string `json:"product_name"`
	UnitPrice int    `json:"price"`
}

type purchaseRequest struct {
	CashierCode string    `json:"cashier_code"`
	StoreCode   string    `json:"store_code"`
	POSID       string    `json:"pos_id"`
	Items       []product `json:"items"`
}

var seed = []product{
	{Code: "001", Name: "Tea", UnitPrice: 150},
	{Code: "002", Name: "Bread", UnitPrice: 300},
	{Code: "003", Name: "Rice Ball", UnitPrice: 120},
	{Code: "004", Name: "Coffee", UnitPrice: 180},
	{Code: "005", Name: "Chocolate", UnitPrice: 220},
}

func main() {
	addr := flag.String("addr", ":8000", "Listen address")
	failPurchase := flag.Int("fail-purchase", 0, "Respond to /purchase with this HTTP status (0 = succeed)")
	flag.Parse()

	products := make(map[string]product, len(seed))
	for _, p := range seed {
		products[p.Code] = p
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.GET("/product/:code", func(c *gin.Context) {
		p, ok := products[c.Param("code")]
		if !ok {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusOK, p)
	})

	r.POST("/purchase", func(c *gin.Context) {
		if *failPurchase != 0 {
			c.Status(*failPurchase)
			return
		}

		var req purchaseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no items"})
			return
		}

		cashier := req.CashierCode
		if cashier == "" {
			cashier = defaultCashierCode
		}

		total := 0
		for _, it := range req.Items {
			total += it.UnitPrice
		}

		txID := "tx_" + uuid.NewString()
		log.Printf("purchase: store=%s pos=%s cashier=%s items=%d total=%d tx=%s",
			req.StoreCode, req.POSID, cashier, len(req.Items), total, txID)

		c.JSON(http.StatusOK, gin.H{
			"success":        true,
			"total_amount":   total,
			"transaction_id": txID,
		})
	})

	fmt.Printf("mock backend on %s (%d seeded products)\n", *addr, len(seed))
	if err := r.Run(*addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
