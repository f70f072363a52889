package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"brit-matcher/config"
	"brit-matcher/internal/adapter/http/dto"
	"brit-matcher/internal/core/domain"
	"brit-matcher/internal/payer"
	"brit-matcher/internal/service"
	"brit-matcher/pkg/logger"
	"brit-matcher/pkg/response"

	"github.com/urfave/cli"
)

const httpTimeout = 30 * time.Second

var genKeyCommand = cli.Command{
	Name:  "genkey",
	Usage: "Generate the matcher's OpenPGP key pair.",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "name", Value: "BRIT Matcher", Usage: "user id name"},
		cli.StringFlag{Name: "email", Usage: "user id email"},
		cli.IntFlag{Name: "bits", Value: 3072, Usage: "RSA modulus size"},
		cli.StringFlag{Name: "secret-out", Value: "matcher-secret.asc", Usage: "where to write the secret keyring"},
		cli.StringFlag{Name: "public-out", Value: "matcher-public.asc", Usage: "where to write the public key for payers"},
	},
	Action: genKey,
}

func genKey(c *cli.Context) error {
	secret, public, err := service.GenerateKeyPair(c.String("name"), c.String("email"), c.Int("bits"))
	if err != nil {
		return err
	}
	if err := writeNew(c.String("secret-out"), secret, 0o600); err != nil {
		return err
	}
	if err := writeNew(c.String("public-out"), public, 0o644); err != nil {
		return err
	}
	fmt.Printf("secret keyring: %s\npublic key:     %s\n", c.String("secret-out"), c.String("public-out"))
	return nil
}

var tokenCommand = cli.Command{
	Name:  "token",
	Usage: "Issue an operator token signed with the configured JWT secret.",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "operator", Usage: "operator name recorded in audit logs"},
	},
	Action: issueToken,
}

func issueToken(c *cli.Context) error {
	operator := c.String("operator")
	if operator == "" {
		return errors.New("--operator is required")
	}
	cfg, err := config.Load(c.GlobalString("config"))
	if err != nil {
		return err
	}
	if cfg.JWT.Secret == "" {
		return errors.New("jwt.secret is not configured")
	}

	tokens := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	token, expires, err := tokens.Generate(operator)
	if err != nil {
		return err
	}
	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires %s\n", expires.UTC().Format(time.RFC3339))
	return nil
}

var importAddressesCommand = cli.Command{
	Name:      "import-addresses",
	Usage:     "Add the addresses listed in a file to the matcher's pool.",
	ArgsUsage: "FILE",
	Description: "FILE holds one address per line. Blank lines and lines\n" +
		"   starting with # are ignored. Use - to read stdin.",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "token", Usage: "operator token", EnvVar: "BRIT_TOKEN"},
	},
	Action: importAddresses,
}

func importAddresses(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.ShowCommandHelp(c, "import-addresses")
	}
	if c.String("token") == "" {
		return errors.New("--token is required")
	}

	f := os.Stdin
	if path := c.Args().First(); path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
	}

	addresses, err := readAddressList(f)
	if err != nil {
		return err
	}
	if len(addresses) == 0 {
		return errors.New("no addresses found")
	}

	body, err := json.Marshal(dto.ImportAddressesRequest{Addresses: addresses})
	if err != nil {
		return err
	}
	endpoint := strings.TrimRight(c.GlobalString("matcher"), "/") + "/api/v1/admin/addresses"
	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.String("token"))

	var result dto.ImportAddressesResponse
	if err := doJSON(req, &result); err != nil {
		return err
	}
	fmt.Printf("submitted %d, added %d\n", result.Submitted, result.Added)
	return nil
}

var exchangeCommand = cli.Command{
	Name:  "exchange",
	Usage: "Run one payer exchange and print the replay date and addresses.",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "pubkey", Value: "matcher-public.asc", Usage: "matcher public key"},
		cli.StringFlag{Name: "seed", Usage: "hex wallet seed to derive the wallet identifier from"},
		cli.StringFlag{Name: "wallet-id", Usage: "hex wallet identifier (instead of --seed)"},
		cli.StringFlag{Name: "first-tx", Usage: "earliest known transaction date, YYYY-MM-DD"},
	},
	Action: exchange,
}

func exchange(c *cli.Context) error {
	walletID, err := walletIDFromFlags(c.String("seed"), c.String("wallet-id"))
	if err != nil {
		return err
	}

	var firstTx *time.Time
	if s := c.String("first-tx"); s != "" {
		d, err := domain.ParseDate(s)
		if err != nil {
			return fmt.Errorf("--first-tx: %w", err)
		}
		firstTx = &d
	}

	requests, err := service.LoadPGPService(c.String("pubkey"), nil)
	if err != nil {
		return err
	}

	log := logger.NewWithWriter(c.GlobalString("loglevel"), os.Stderr)
	client := payer.NewClient(payer.Config{
		Endpoint: strings.TrimRight(c.GlobalString("matcher"), "/") + "/api/v1/brit/exchange",
	}, requests, service.NewAESResponseCipher(), &http.Client{Timeout: httpTimeout}, log)

	resp, err := client.Exchange(context.Background(), walletID, firstTx)
	if err != nil {
		return err
	}

	fmt.Printf("wallet:      %s\n", walletID)
	if resp.ReplayDate != nil {
		fmt.Printf("replay from: %s\n", resp.ReplayDate.UTC().Format(time.RFC3339))
	} else {
		fmt.Println("replay from: -")
	}
	for _, a := range resp.Addresses {
		fmt.Printf("address:     %s\n", a)
	}
	return nil
}

func walletIDFromFlags(seedHex, walletHex string) (domain.WalletID, error) {
	switch {
	case seedHex != "" && walletHex != "":
		return domain.WalletID{}, errors.New("use either --seed or --wallet-id, not both")
	case walletHex != "":
		return domain.ParseWalletID(walletHex)
	case seedHex != "":
		seed, err := hex.DecodeString(seedHex)
		if err != nil {
			return domain.WalletID{}, fmt.Errorf("--seed: %w", err)
		}
		return payer.DeriveWalletID(seed)
	}
	return domain.WalletID{}, errors.New("one of --seed or --wallet-id is required")
}

func doJSON(req *http.Request, out interface{}) error {
	client := &http.Client{Timeout: httpTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e response.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&e) == nil && e.ErrorCode != "" {
			return fmt.Errorf("matcher returned %d: [%s] %s", resp.StatusCode, e.ErrorCode, e.Message)
		}
		return fmt.Errorf("matcher returned %d", resp.StatusCode)
	}

	envelope := response.SuccessResponse{Data: out}
	return json.NewDecoder(resp.Body).Decode(&envelope)
}

func writeNew(path string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
