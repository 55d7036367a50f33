package impl

import (
	"math/big"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Decentr-net/plutus/internal/contract"
	"github.com/Decentr-net/plutus/internal/entities"
	"github.com/Decentr-net/plutus/internal/validation"
)

const (
	maxDisplayNameLength = 64
	maxBioLength         = 500
	maxTierNameLength    = 64
	maxDescriptionLength = 500
	maxCaptionLength     = 2000
	maxCommentLength     = 500
	maxMessageLength     = 2000
)

// nolint:gochecknoglobals
var usernameRegexp = regexp.MustCompile(`^[a-z0-9_]{3,32}$`)

// parseAddress validates address and returns it in checksum form.
func parseAddress(field, address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", validation.Errorf(field, "%q is not an address", address)
	}

	a := common.HexToAddress(address)
	if a == (common.Address{}) {
		return "", validation.Errorf(field, "zero address")
	}

	return a.Hex(), nil
}

func parseOptionalAddress(field, address string) (string, error) {
	if address == "" {
		return "", nil
	}

	return parseAddress(field, address)
}

func validateUsername(username string) error {
	if !usernameRegexp.MatchString(username) {
		return validation.Errorf("username", "should be 3-32 characters of a-z, 0-9 and _")
	}

	return nil
}

func validateText(field, v string, min, max int) error {
	l := utf8.RuneCountInString(strings.TrimSpace(v))

	if l < min {
		if min == 1 {
			return validation.Errorf(field, "is empty")
		}
		return validation.Errorf(field, "should be at least %d characters", min)
	}

	if utf8.RuneCountInString(v) > max {
		return validation.Errorf(field, "should be at most %d characters", max)
	}

	return nil
}

func validatePositive(field string, v *big.Int) error {
	if v == nil || v.Sign() <= 0 {
		return validation.Errorf(field, "should be positive")
	}

	return nil
}

func validateRegisterCreator(p contract.RegisterCreatorParams) error {
	if err := validateUsername(p.Username); err != nil {
		return err
	}

	return validateProfile(p.DisplayName, p.Bio)
}

func validateProfile(displayName, bio string) error {
	if err := validateText("displayName", displayName, 1, maxDisplayNameLength); err != nil {
		return err
	}

	return validateText("bio", bio, 0, maxBioLength)
}

func validateCreateTier(p contract.CreateTierParams) error {
	if err := validateText("name", p.Name, 1, maxTierNameLength); err != nil {
		return err
	}

	if err := validateText("description", p.Description, 0, maxDescriptionLength); err != nil {
		return err
	}

	return validatePositive("price", p.Price)
}

func validateCreatePost(p contract.CreatePostParams) error {
	if !p.ContentType.Valid() {
		return validation.Errorf("contentType", "unknown content type %d", p.ContentType)
	}

	if !p.AccessLevel.Valid() {
		return validation.Errorf("accessLevel", "unknown access level %d", p.AccessLevel)
	}

	if p.ContentType != entities.ContentTypeText && strings.TrimSpace(p.ContentRef) == "" {
		return validation.Errorf("contentRef", "is required for %s post", p.ContentType)
	}

	return validateText("caption", p.Caption, 0, maxCaptionLength)
}
