package service

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/openpgp"
	"golang.org/x/crypto/openpgp/armor"
	"golang.org/x/crypto/openpgp/packet"
)

const pgpMessageType = "PGP MESSAGE"

// MaxRequestPlaintext caps the decrypted size of a request. Compressed packets
// can expand far beyond the ciphertext, so the body is never read unbounded.
const MaxRequestPlaintext = 4 << 10

var armorPrefix = []byte("-----BEGIN ")

// PGPService implements ports.RequestCipher with OpenPGP public-key encryption.
// Private keys are unlocked once at construction so Decrypt is safe for concurrent use.
type PGPService struct {
	keyring openpgp.EntityList
}

// NewPGPService unlocks every private key in keyring with passphrase.
// A keyring holding only public keys can encrypt but not decrypt.
func NewPGPService(keyring openpgp.EntityList, passphrase []byte) (*PGPService, error) {
	if len(keyring) == 0 {
		return nil, errors.New("pgp keyring is empty")
	}
	for _, e := range keyring {
		if err := unlockKey(e.PrivateKey, passphrase); err != nil {
			return nil, fmt.Errorf("unlocking key %X: %w", e.PrimaryKey.Fingerprint, err)
		}
		for _, sub := range e.Subkeys {
			if err := unlockKey(sub.PrivateKey, passphrase); err != nil {
				return nil, fmt.Errorf("unlocking subkey of %X: %w", e.PrimaryKey.Fingerprint, err)
			}
		}
	}
	return &PGPService{keyring: keyring}, nil
}

// LoadPGPService reads an armored or binary keyring from path.
func LoadPGPService(path string, passphrase []byte) (*PGPService, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keyring: %w", err)
	}
	keyring, err := ReadKeyring(raw)
	if err != nil {
		return nil, err
	}
	return NewPGPService(keyring, passphrase)
}

// ReadKeyring parses an armored or binary OpenPGP keyring.
func ReadKeyring(raw []byte) (openpgp.EntityList, error) {
	var (
		keyring openpgp.EntityList
		err     error
	)
	if isArmored(raw) {
		keyring, err = openpgp.ReadArmoredKeyRing(bytes.NewReader(raw))
	} else {
		keyring, err = openpgp.ReadKeyRing(bytes.NewReader(raw))
	}
	if err != nil {
		return nil, fmt.Errorf("parsing keyring: %w", err)
	}
	return keyring, nil
}

func unlockKey(key *packet.PrivateKey, passphrase []byte) error {
	if key == nil || !key.Encrypted {
		return nil
	}
	if len(passphrase) == 0 {
		return errors.New("key is passphrase protected but no passphrase was configured")
	}
	return key.Decrypt(passphrase)
}

// Encrypt seals plaintext to every key in the keyring and returns an armored message.
func (s *PGPService) Encrypt(plaintext []byte) ([]byte, error) {
	var buf bytes.Buffer
	aw, err := armor.Encode(&buf, pgpMessageType, nil)
	if err != nil {
		return nil, fmt.Errorf("opening armor: %w", err)
	}
	w, err := openpgp.Encrypt(aw, s.keyring, nil, &openpgp.FileHints{IsBinary: true}, nil)
	if err != nil {
		return nil, fmt.Errorf("opening pgp writer: %w", err)
	}
	if _, err := w.Write(plaintext); err != nil {
		return nil, fmt.Errorf("writing plaintext: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing pgp writer: %w", err)
	}
	if err := aw.Close(); err != nil {
		return nil, fmt.Errorf("closing armor: %w", err)
	}
	return buf.Bytes(), nil
}

// Decrypt opens an armored or binary message addressed to one of the keyring's keys.
func (s *PGPService) Decrypt(payload []byte) ([]byte, error) {
	var r io.Reader = bytes.NewReader(payload)
	if isArmored(payload) {
		block, err := armor.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("decoding armor: %w", err)
		}
		if block.Type != pgpMessageType {
			return nil, fmt.Errorf("unexpected armor block %q", block.Type)
		}
		r = block.Body
	}

	md, err := openpgp.ReadMessage(r, s.keyring, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("reading pgp message: %w", err)
	}
	if !md.IsEncrypted {
		return nil, errors.New("pgp message is not encrypted")
	}

	// The integrity check runs when the body is drained.
	plaintext, err := io.ReadAll(io.LimitReader(md.UnverifiedBody, MaxRequestPlaintext+1))
	if err != nil {
		return nil, fmt.Errorf("reading pgp body: %w", err)
	}
	if len(plaintext) > MaxRequestPlaintext {
		return nil, fmt.Errorf("pgp body exceeds %d bytes", MaxRequestPlaintext)
	}
	return plaintext, nil
}

func isArmored(raw []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(raw), armorPrefix)
}

// GenerateKeyPair creates a fresh RSA entity and returns its armored secret keyring
// and armored public key. The secret keyring is written unencrypted.
func GenerateKeyPair(name, email string, bits int) (secret, public []byte, err error) {
	cfg := &packet.Config{RSABits: bits}
	entity, err := openpgp.NewEntity(name, "BRIT matcher", email, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("generating entity: %w", err)
	}

	secret, err = armorEntity(openpgp.PrivateKeyType, func(w io.Writer) error {
		return entity.SerializePrivate(w, cfg)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("serializing secret key: %w", err)
	}
	public, err = armorEntity(openpgp.PublicKeyType, entity.Serialize)
	if err != nil {
		return nil, nil, fmt.Errorf("serializing public key: %w", err)
	}
	return secret, public, nil
}

func armorEntity(blockType string, serialize func(io.Writer) error) ([]byte, error) {
	var buf bytes.Buffer
	w, err := armor.Encode(&buf, blockType, nil)
	if err != nil {
		return nil, err
	}
	if err := serialize(w); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
