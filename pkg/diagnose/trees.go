package diagnose

func power(r *run) {
	if !r.yes("Do you see ANY lights or hear fans when you press power?") {
		r.action("Check outlet and power cable; try a different outlet or power strip.")
		if !r.yes("Do you see any indicator light on the charger/PSU?") {
			r.action("Try a different cable/charger/PSU; potential power supply failure.")
			return
		}
		if r.yes("Does a 10+ second power-button press do anything?") {
			r.action("Perform a force shutdown, then power on again.")
			return
		}
		r.escalate("Possible hardware failure in power circuitry.")
		return
	}

	if r.yes("Do you hear any beep codes or see an error on screen?") {
		r.action("Consult the motherboard/computer manual for beep codes; likely RAM/GPU/other hardware.")
	} else {
		r.action("Try disconnecting peripherals and power-cycling. If issue persists, escalate.")
	}
}

func boot(r *run) {
	if !r.yes("Does the device power on (lights/fans) but the OS doesn't load?") {
		r.action("If it does not power on at all, re-check POWER category steps.")
		r.escalate("No power to boot; likely POWER category root cause.")
		return
	}

	if r.yes("Do you see error text or hear beep codes?") {
		r.action("Look up the specific error/beep code for your model; likely hardware (e.g., RAM/GPU).")
	}
	if r.yes("Can you access Safe Mode?") {
		r.action("Run startup repair or uninstall recent drivers/updates.")
		return
	}
	if r.yes("Do you have a bootable USB installer/recovery drive?") {
		r.action("Boot from USB, run repair utilities, and check disk health.")
		return
	}
	r.escalate("Create boot media; if OS still won't load after repairs, escalate.")
}

func internet(r *run) {
	if r.yes("Are other devices on your network able to go online?") {
		r.action("This device-specific: renew IP, forget & rejoin Wi-Fi, or reset the network adapter.")
	} else {
		r.action("Router/modem issue likely: power-cycle modem/router for 30–60 seconds.")
	}

	if !r.yes("Does this device show Wi-Fi as 'connected'?") {
		r.action("Reconnect to the correct SSID and verify password.")
		return
	}
	if !r.yes("Even when connected, can you browse the web?") {
		r.action("Ping the gateway/DNS, flush DNS cache, and set a public DNS (e.g., 8.8.8.8).")
	}
	if r.yes("Are you using Ethernet on this device?") {
		r.action("Check/replace Ethernet cable; try a different router/switch port.")
	}
}

func display(r *run) {
	if r.yes("Are you using an external monitor?") {
		if !r.yes("Is the monitor input (HDMI/DP) set correctly and cable seated?") {
			r.action("Set correct input source and reseat/replace the cable.")
			return
		}
		if !r.yes("On power-up, do you see the monitor's brand splash/logo?") {
			r.action("Monitor power issue or bad cable; test with another cable/port/device.")
			return
		}
	}

	if r.yes("Is this a laptop?") {
		r.action("Toggle display mode (Win+P / macOS Displays) and update GPU drivers.")
	}
	if r.yes("Do you see flicker or wrong/low resolution?") {
		r.action("Set native resolution/refresh rate; update GPU driver; try another cable/port.")
	}
}

func performance(r *run) {
	if r.yes("Does one specific app top CPU/RAM in Task Manager/Activity Monitor?") {
		r.action("Close/update/reinstall that app; check for known issues or patches.")
	}
	if r.yes("Is disk space low on the system drive?") {
		r.action("Free up space: remove temp files, uninstall unused apps, clear caches.")
	}
	r.action("Disable heavy startup apps, scan for malware, and apply OS/driver updates.")
}

func audio(r *run) {
	if !r.yes("Is the correct audio output device selected?") {
		r.action("Switch to the intended speakers/headset in system audio settings.")
		return
	}
	if r.yes("Is the system/app muted or volume set very low?") {
		r.action("Unmute and raise volume in both system and app settings.")
	}
	r.action("Reinstall/enable audio driver if needed; test with headphones; verify mic/app permissions.")
}

func software(r *run) {
	if r.yes("Are you troubleshooting an installation failure?") {
		if r.yes("Is it a permission/security warning?") {
			r.action("Run as admin; allow via OS security (Gatekeeper/SmartScreen); check antivirus.")
		}
		if r.yes("Does the error mention a missing dependency/framework?") {
			r.action("Install the required redistributable/framework/library and retry.")
		}
	}

	if r.yes("Is an app crashing on launch/use?") {
		r.action("Clear app cache/config, update/reinstall, and check version compatibility with your OS.")
		r.action("Review app/system logs for specific error messages.")
	}
}
