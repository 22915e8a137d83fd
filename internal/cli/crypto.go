package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hecreatescode/versekeeper/internal/common"
)

func (a *App) encryptPoem(ctx context.Context, args []string) {
	id, ok := oneArg(args, "encrypt <id>")
	if !ok {
		return
	}

	password, err := GetPassword(os.Stdout, "Enter password: ")
	if err != nil {
		a.log.Error(ctx, "password input error", "err", err)
		return
	}
	defer common.WipeByteArray(password)

	confirm, err := GetPassword(os.Stdout, "Repeat password: ")
	if err != nil {
		a.log.Error(ctx, "password input error", "err", err)
		return
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		fmt.Println("Passwords do not match.")
		return
	}

	if err := a.poemService.Encrypt(ctx, id, password); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Encrypted", id)
}

func (a *App) decryptPoem(ctx context.Context, args []string) {
	id, ok := oneArg(args, "decrypt <id>")
	if !ok {
		return
	}

	password, err := GetPassword(os.Stdout, "Enter password: ")
	if err != nil {
		a.log.Error(ctx, "password input error", "err", err)
		return
	}
	defer common.WipeByteArray(password)

	if err := a.poemService.Decrypt(ctx, id, password); err != nil {
		if errors.Is(err, common.ErrDecryptionFailed) {
			fmt.Println("Failed to decrypt content - wrong password?")
		} else {
			fmt.Println(err)
		}
		return
	}
	fmt.Println("Decrypted", id)
}

func (a *App) revealPoem(ctx context.Context, args []string) {
	id, ok := oneArg(args, "reveal <id>")
	if !ok {
		return
	}

	password, err := GetPassword(os.Stdout, "Enter password: ")
	if err != nil {
		a.log.Error(ctx, "password input error", "err", err)
		return
	}
	defer common.WipeByteArray(password)

	text, err := a.poemService.Reveal(ctx, id, password)
	if err != nil {
		if errors.Is(err, common.ErrDecryptionFailed) {
			fmt.Println("Failed to decrypt content - wrong password?")
		} else {
			fmt.Println(err)
		}
		return
	}
	fmt.Println(text)
}
