package crypto_test

import (
	"fmt"

	"github.com/edoclabs/edoc/crypto"
	"github.com/edoclabs/edoc/crypto/cipher"
)

func ExampleEncrypter_ByEdoc() {
	c := cipher.NewEdocCipher()
	c.SetKey([]byte("my password"))

	sealed := crypto.NewEncrypter().FromString("attack at dawn").ByEdoc(c).ToRawBytes()

	recovered := crypto.NewDecrypter().FromRawBytes(sealed).ByEdoc(c).ToString()
	fmt.Println(recovered)
	// Output: attack at dawn
}

func ExampleDecrypter_ByEdoc() {
	c := cipher.NewEdocCipher()
	c.SetKey([]byte("my password"))

	sealed := crypto.NewEncrypter().FromString("meet at the bridge").ByEdoc(c).ToBase64String()

	decrypter := crypto.NewDecrypter().FromBase64String(sealed).ByEdoc(c)
	fmt.Println(decrypter.ToString())
	// Output: meet at the bridge
}
