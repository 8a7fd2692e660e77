// Command tokengen issues bearer tokens for the tool gateway.
//
//	tokengen -s secret -n agent-runtime -tools check_return_eligibility,process_return
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ibeloyar/returndesk/internal/model"
	"github.com/ibeloyar/returndesk/pgk/auth"
)

func main() {
	var (
		secret   string
		name     string
		tools    string
		lifetime time.Duration
	)

	flag.StringVar(&secret, "s", "", "Secret key, same as the server SECRET_KEY")
	flag.StringVar(&name, "n", "agent", "Caller name")
	flag.StringVar(&tools, "tools", "", "Comma separated tools the caller may invoke, all when empty")
	flag.DurationVar(&lifetime, "h", 24*time.Hour, "Token lifetime (e.g. 1h, 30m, 720h)")
	flag.Parse()

	if secret == "" {
		log.Fatal("secret key is required")
	}

	caller := model.Caller{Name: name}
	for _, tool := range strings.Split(tools, ",") {
		if tool = strings.TrimSpace(tool); tool != "" {
			caller.Tools = append(caller.Tools, tool)
		}
	}

	token, err := auth.GenerateBearerToken(caller, name, lifetime, secret)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token)
}
