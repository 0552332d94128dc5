//go:build mage
// +build mage

package main

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
)

var (
	buildDir = "bin"
	binName  = "clawhealth"
)

// Build compiles clawhealth for the deployment target (linux/amd64).
func Build() error {
	fmt.Println("Building...")
	env := map[string]string{
		"GOOS":   "linux",
		"GOARCH": "amd64",
	}
	return sh.RunWithV(env, "go", "build", "-o", filepath.Join(buildDir, binName), "./cmd/clawhealth")
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Clean removes build artifacts.
func Clean() {
	fmt.Println("Cleaning...")
	os.RemoveAll(buildDir)
}

type Remote mg.Namespace

// Deploy copies the binary to the OpenClaw host over SSH.
// Assumes you have SSH keys set up for the host.
func (Remote) Deploy(host string, username string) error {
	mg.Deps(Build)
	connStr := fmt.Sprintf("%s@%s", username, host)
	deployPath := "/home/" + username + "/clawhealth"
	fmt.Printf("Copying binary via SCP to %s:%s\n", connStr, deployPath)

	if err := sh.Run("ssh", connStr, "mkdir -p", deployPath); err != nil {
		return fmt.Errorf("failed to create deploy path on host: %w", err)
	}
	if err := sh.Run("scp", filepath.Join(buildDir, binName), fmt.Sprintf("%s:%s/%s", connStr, deployPath, binName)); err != nil {
		return fmt.Errorf("failed to deploy to host: %w", err)
	}
	return nil
}

// Check deploys and runs a one-shot health report on the OpenClaw host.
func (Remote) Check(host string, username string) error {
	mg.Deps(mg.F(Remote.Deploy, host, username))
	client, err := sshClient(username, host)
	if err != nil {
		return fmt.Errorf("failed to create SSH client: %w", err)
	}
	defer client.Close()
	session, err := client.NewSession()
	if err != nil {
		return fmt.Errorf("failed to create SSH session: %w", err)
	}
	defer session.Close()

	session.Stdout = os.Stdout
	session.Stderr = os.Stderr
	return session.Run("~/clawhealth/clawhealth --health --report")
}

func sshClient(user, host string) (*ssh.Client, error) {
	cfg := &ssh.ClientConfig{
		User:            user,
		Auth:            agentAuth(),
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), // Dev only.
	}
	addr := net.JoinHostPort(host, "22")
	fmt.Println("Dialing SSH client to", addr)
	return ssh.Dial("tcp", addr, cfg)
}

// agentAuth collects keys from the running SSH agent. RSA keys are
// pinned to SHA-2 signature algorithms, since newer OpenSSH servers
// reject SHA-1 ssh-rsa signatures.
func agentAuth() []ssh.AuthMethod {
	conn, err := net.Dial("unix", os.Getenv("SSH_AUTH_SOCK"))
	if err != nil {
		fmt.Println("No SSH agent available...")
		return nil
	}
	signers, err := agent.NewClient(conn).Signers()
	if err != nil || len(signers) == 0 {
		fmt.Println("No SSH keys found...")
		return nil
	}
	for i, signer := range signers {
		if signer.PublicKey().Type() != ssh.KeyAlgoRSA {
			continue
		}
		alg, ok := signer.(ssh.AlgorithmSigner)
		if !ok {
			continue
		}
		pinned, err := ssh.NewSignerWithAlgorithms(alg, []string{
			ssh.KeyAlgoRSASHA256,
			ssh.KeyAlgoRSASHA512,
			ssh.KeyAlgoRSA,
		})
		if err == nil {
			signers[i] = pinned
		}
	}
	return []ssh.AuthMethod{ssh.PublicKeys(signers...)}
}
